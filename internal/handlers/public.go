package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/internal/theme"
	"github.com/darkred-portfolio/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicHandler renders the visitor-facing pages.
type PublicHandler struct {
	public  *services.PublicService
	contact *services.ContactService
}

func NewPublicHandler(public *services.PublicService, contact *services.ContactService) *PublicHandler {
	return &PublicHandler{public: public, contact: contact}
}

// render loads the shared site context and executes the named page. Every
// page gets Site and Title; data adds the page-specific fields.
func (h *PublicHandler) render(c *gin.Context, status int, page, title string, data gin.H) {
	site, err := h.public.Site(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if data == nil {
		data = gin.H{}
	}
	data["Site"] = site
	data["Title"] = title
	c.HTML(status, page, data)
}

func (h *PublicHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.Errorf("[Public] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "Something went wrong. Please try again later.")
}

// heading fills the title block shared by the section pages.
func heading(data gin.H, title, subtitle, intro string) gin.H {
	data["Heading"] = title
	data["Subheading"] = subtitle
	data["Intro"] = intro
	return data
}

// Home shows the profile summary, featured projects, experience and education
// GET /
func (h *PublicHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	home, err := h.public.Home(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	history, err := h.public.Experience(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	projects, err := h.public.Projects(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "home.html", "", gin.H{
		"Featured":     home.Featured,
		"Experiences":  history.Experiences,
		"Educations":   history.Educations,
		"ProjectCount": len(projects),
	})
}

// GET /about
func (h *PublicHandler) About(c *gin.Context) {
	site, err := h.public.Site(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	history, err := h.public.Experience(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	s := site.Settings
	data := heading(gin.H{"Educations": history.Educations}, s.AboutPageTitle, s.AboutPageSubtitle, s.AboutPageContent)
	h.render(c, http.StatusOK, "about.html", s.AboutPageTitle, data)
}

// GET /experience
func (h *PublicHandler) Experience(c *gin.Context) {
	site, err := h.public.Site(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	history, err := h.public.Experience(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	s := site.Settings
	data := heading(gin.H{
		"Experiences": history.Experiences,
		"Educations":  history.Educations,
	}, s.ExperiencePageTitle, s.ExperiencePageSubtitle, s.ExperiencePageContent)
	h.render(c, http.StatusOK, "experience.html", s.ExperiencePageTitle, data)
}

// GET /projects
func (h *PublicHandler) Projects(c *gin.Context) {
	site, err := h.public.Site(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	projects, err := h.public.Projects(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	var featured []models.Project
	for _, p := range projects {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}

	s := site.Settings
	data := heading(gin.H{
		"Projects": projects,
		"Featured": featured,
	}, s.ProjectsPageTitle, s.ProjectsPageSubtitle, s.ProjectsPageContent)
	h.render(c, http.StatusOK, "projects.html", s.ProjectsPageTitle, data)
}

// GET /projects/:slug
func (h *PublicHandler) ProjectDetail(c *gin.Context) {
	project, err := h.public.Project(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "project_detail.html", project.Title, gin.H{"Project": project})
}

// Contact shows the form plus the outcome of the previous submission
// GET /contact
func (h *PublicHandler) Contact(c *gin.Context) {
	site, err := h.public.Site(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	s := site.Settings
	data := heading(gin.H{
		"Sent":  c.Query("sent") == "1",
		"Error": c.Query("error"),
	}, s.ContactPageTitle, s.ContactPageSubtitle, s.ContactPageContent)
	h.render(c, http.StatusOK, "contact.html", s.ContactPageTitle, data)
}

// SubmitContact stores a message and redirects back to the form
// POST /contact
func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var req services.SubmitContactRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectContactError(c, "Please check the form and try again.")
		return
	}

	if _, err := h.contact.Submit(&req, c.ClientIP()); err != nil {
		if _, ok := models.AsValidationError(err); ok {
			redirectContactError(c, "Please fill in all required fields.")
			return
		}
		logger.Errorf("[Public] Failed to store contact message: %v", err)
		redirectContactError(c, "Your message could not be sent. Please try again later.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/contact?sent=1")
}

// ContactRateLimited answers a throttled contact submission
func (h *PublicHandler) ContactRateLimited(c *gin.Context) {
	redirectContactError(c, "You are sending messages too quickly. Please try again in a minute.")
}

func redirectContactError(c *gin.Context, msg string) {
	c.Redirect(http.StatusSeeOther, "/contact?error="+url.QueryEscape(msg))
}

// ThemeCSS emits the active palette as CSS custom properties
// GET /theme.css
func (h *PublicHandler) ThemeCSS(c *gin.Context) {
	site, err := h.public.Site(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(theme.CSS(site.Palette)))
}

// NotFound renders the themed 404 page; it is also the router's NoRoute.
func (h *PublicHandler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "not_found.html", "Not found", nil)
}
