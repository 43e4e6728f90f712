package main

import (
	"context"
	"fmt"
	"time"

	"github.com/darkred-portfolio/backend/internal/cache"
	"github.com/darkred-portfolio/backend/internal/config"
	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/darkred-portfolio/backend/internal/storage"
	"github.com/darkred-portfolio/backend/internal/theme"
	"github.com/darkred-portfolio/backend/internal/utils"
	"github.com/darkred-portfolio/backend/pkg/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// appServices holds everything the routes and shutdown need.
type appServices struct {
	cfg       *config.Config
	db        *gorm.DB
	themes    *theme.Table
	pageCache cache.Cache
	uploader  storage.Uploader
	localDir  string
	closers   []func() error

	auth      *services.AuthService
	contact   *services.ContactService
	public    *services.PublicService
	taskQueue services.TaskQueue
	worker    *services.Worker
	scheduler *services.Scheduler
}

// bootstrap initializes all application dependencies: database, themes,
// cache, uploads, queue, worker and schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database, cfg.Log.Level == "debug"); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	db := models.GetDB()

	if err := models.Migrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}
	if err := models.Seed(db); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	services.InitSystemLogger(db)

	svc := &appServices{cfg: cfg, db: db, themes: theme.Default()}

	if cfg.Theme.File != "" {
		table, err := theme.LoadFile(cfg.Theme.File)
		if err != nil {
			logger.Fatalf("Failed to load theme table %s: %v", cfg.Theme.File, err)
		}
		theme.SetDefault(table)
		svc.themes = table
		logger.Infof("[Theme] Loaded %d themes from %s", len(table.Themes()), cfg.Theme.File)
	}

	svc.pageCache = svc.initCache()
	revoked := svc.pageCache
	if _, ok := revoked.(cache.Noop); ok {
		revoked = cache.NewMemoryCache(time.Hour, 10*time.Minute)
	}

	uploader, err := svc.initUploader()
	if err != nil {
		logger.Fatalf("Failed to initialize uploads: %v", err)
	}
	svc.uploader = uploader

	notifier := services.NewNotificationService(db)
	svc.taskQueue = services.InitTaskQueue(cfg)
	if syncQueue, ok := svc.taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(notifier.SendContactNotification)
	}

	if svc.worker = services.NewWorker(&cfg.Redis); svc.worker != nil {
		svc.worker.SetProcessor(notifier.SendContactNotification)
		if err := svc.worker.Start(); err != nil {
			logger.Errorf("Failed to start worker: %v", err)
		}
	}

	scheduler, err := services.NewScheduler(db)
	if err != nil {
		logger.Fatalf("Failed to create scheduler: %v", err)
	}
	scheduler.Start()
	svc.scheduler = scheduler

	svc.auth = services.NewAuthService(db, &cfg.JWT, revoked)
	if err := svc.auth.EnsureAdmin(&cfg.Admin); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	svc.contact = services.NewContactService(db, svc.taskQueue, services.GetSSEHub())
	svc.public = services.NewPublicService(db, svc.themes, svc.pageCache, time.Duration(cfg.Cache.TTLSeconds)*time.Second)

	return svc
}

func (s *appServices) initCache() cache.Cache {
	ttl := time.Duration(s.cfg.Cache.TTLSeconds) * time.Second

	switch s.cfg.Cache.Driver {
	case "none":
		logger.Infof("[Cache] Page cache disabled")
		return cache.Noop{}
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     s.cfg.Redis.Addr,
			Password: s.cfg.Redis.Password,
			DB:       s.cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("[Cache] Redis unavailable, falling back to memory cache: %v", err)
			rdb.Close()
			return cache.NewMemoryCache(ttl, 2*ttl)
		}
		s.closers = append(s.closers, rdb.Close)
		logger.Infof("[Cache] Redis page cache at %s", s.cfg.Redis.Addr)
		return cache.NewRedisCache(rdb)
	default:
		logger.Infof("[Cache] In-memory page cache, ttl %s", ttl)
		return cache.NewMemoryCache(ttl, 2*ttl)
	}
}

func (s *appServices) initUploader() (storage.Uploader, error) {
	switch s.cfg.Upload.Backend {
	case "gcs":
		if s.cfg.Upload.Bucket == "" {
			return nil, fmt.Errorf("upload.bucket is required for the gcs backend")
		}
		u, err := storage.NewGCSUploader(context.Background(), s.cfg.Upload.Bucket)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, u.Close)
		logger.Infof("[Upload] Storing media in gs://%s", s.cfg.Upload.Bucket)
		return u, nil
	case "local", "":
		u, err := storage.NewLocalUploader(s.cfg.Upload.Dir, s.cfg.Upload.PublicURL)
		if err != nil {
			return nil, err
		}
		s.localDir = u.Dir()
		logger.Infof("[Upload] Storing media in %s", u.Dir())
		return u, nil
	default:
		return nil, fmt.Errorf("unknown upload backend %q", s.cfg.Upload.Backend)
	}
}

// shutdown gracefully stops background work and releases connections.
func (s *appServices) shutdown() {
	s.scheduler.Stop()

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		if err := s.taskQueue.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close task queue")
		}
	}
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close resource")
		}
	}
	if err := models.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close database")
	}
	logger.Info().Msg("Shutdown complete")
}
