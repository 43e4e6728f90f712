package main

import (
	"net/http"
	"strings"

	"github.com/darkred-portfolio/backend/internal/handlers"
	"github.com/darkred-portfolio/backend/internal/middleware"
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/internal/web"
	"github.com/darkred-portfolio/backend/pkg/logger"
	"github.com/darkred-portfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up the public site and the management API.
func registerRoutes(r *gin.Engine, svc *appServices) error {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.CORS(svc.cfg.Server.AllowOrigins))
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	contactLimiter := middleware.PerMinute(5, 3)
	loginLimiter := middleware.PerMinute(10, 5)
	svc.closers = append(svc.closers,
		func() error { contactLimiter.Stop(); return nil },
		func() error { loginLimiter.Stop(); return nil },
	)

	r.GET("/health", handlers.NewHealthHandler(svc.db).CheckHealth)
	r.GET("/metrics", handlers.Metrics(svc.db))

	// Public site
	public := handlers.NewPublicHandler(svc.public, svc.contact)
	r.GET("/", public.Home)
	r.GET("/about", public.About)
	r.GET("/experience", public.Experience)
	r.GET("/projects", public.Projects)
	r.GET("/projects/:slug", public.ProjectDetail)
	r.GET("/contact", public.Contact)
	r.POST("/contact", contactLimiter.MiddlewareWith(public.ContactRateLimited), public.SubmitContact)
	r.GET("/theme.css", public.ThemeCSS)
	r.StaticFS("/static", http.FS(web.Static()))
	if svc.localDir != "" && strings.HasPrefix(svc.cfg.Upload.PublicURL, "/") {
		r.Static(svc.cfg.Upload.PublicURL, svc.localDir)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.NotFound(c, "route not found")
			return
		}
		public.NotFound(c)
	})

	uploads := handlers.NewUploads(svc.uploader, svc.cfg.MaxUploadBytes())
	authHandler := handlers.NewAuthHandler(svc.auth)

	api := r.Group("/api", middleware.AuditLog())
	{
		api.POST("/auth/login", loginLimiter.Middleware(), authHandler.Login)

		protected := api.Group("", middleware.AuthRequired(svc.auth), middleware.InvalidateOnWrite(svc.public.Invalidate))
		{
			// Auth
			protected.GET("/auth/me", authHandler.GetCurrentUser)
			protected.POST("/auth/logout", authHandler.Logout)
			protected.POST("/auth/change-password", authHandler.ChangePassword)

			// SSE (EventSource passes the token as ?token=)
			sseHandler := handlers.NewSSEHandler(services.GetSSEHub())
			protected.GET("/events/messages", sseHandler.StreamMessageEvents)

			// Dashboard
			dashboardHandler := handlers.NewDashboardHandler(svc.db)
			protected.GET("/dashboard/stats", dashboardHandler.GetStats)

			// Profile
			profileHandler := handlers.NewProfileHandler(svc.db, uploads)
			protected.GET("/profile", profileHandler.Get)
			protected.PUT("/profile", profileHandler.Update)
			protected.POST("/profile/upload/:kind", profileHandler.Upload)

			// Site settings & themes
			settingsHandler := handlers.NewSiteSettingsHandler(svc.db, svc.themes)
			protected.GET("/site-settings", settingsHandler.Get)
			protected.PUT("/site-settings", settingsHandler.Update)
			protected.GET("/themes", settingsHandler.ListThemes)
			protected.GET("/themes/:id", settingsHandler.GetTheme)

			// Experiences
			experienceHandler := handlers.NewExperienceHandler(svc.db)
			protected.GET("/experiences", experienceHandler.List)
			protected.GET("/experiences/:id", experienceHandler.GetByID)
			protected.POST("/experiences", experienceHandler.Create)
			protected.PUT("/experiences/:id", experienceHandler.Update)
			protected.DELETE("/experiences/:id", experienceHandler.Delete)

			// Educations
			educationHandler := handlers.NewEducationHandler(svc.db)
			protected.GET("/educations", educationHandler.List)
			protected.GET("/educations/:id", educationHandler.GetByID)
			protected.POST("/educations", educationHandler.Create)
			protected.PUT("/educations/:id", educationHandler.Update)
			protected.DELETE("/educations/:id", educationHandler.Delete)

			// Projects
			projectHandler := handlers.NewProjectHandler(svc.db, uploads)
			protected.GET("/projects", projectHandler.List)
			protected.GET("/projects/:id", projectHandler.GetByID)
			protected.POST("/projects", projectHandler.Create)
			protected.PUT("/projects/:id", projectHandler.Update)
			protected.DELETE("/projects/:id", projectHandler.Delete)
			protected.POST("/projects/:id/image", projectHandler.UploadImage)

			// Messages
			messageHandler := handlers.NewMessageHandler(svc.contact)
			protected.GET("/messages", messageHandler.List)
			protected.GET("/messages/unread-count", messageHandler.UnreadCount)
			protected.GET("/messages/:id", messageHandler.GetByID)
			protected.DELETE("/messages/:id", messageHandler.Delete)
			protected.PUT("/messages/:id/read", messageHandler.SetRead)
			protected.POST("/messages/:id/toggle-read", messageHandler.ToggleRead)

			// System
			admin := protected.Group("", middleware.AdminRequired())
			systemLogHandler := handlers.NewSystemLogHandler(svc.db)
			admin.GET("/system-logs", systemLogHandler.List)
			admin.GET("/system-logs/modules", systemLogHandler.GetModules)

			systemConfigHandler := handlers.NewSystemConfigHandler(svc.db)
			admin.GET("/system-config/notifications", systemConfigHandler.GetNotificationSettings)
			admin.PUT("/system-config/notifications", systemConfigHandler.UpdateNotificationSettings)
		}
	}

	return nil
}
