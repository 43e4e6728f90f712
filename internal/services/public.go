package services

import (
	"context"
	"time"

	"github.com/darkred-portfolio/backend/internal/cache"
	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/internal/theme"
	"gorm.io/gorm"
)

// PublicCachePrefix namespaces every key written by PublicService.
const PublicCachePrefix = "public:"

// SiteContext is what every public page renders around its content.
type SiteContext struct {
	Profile  *models.Profile      `json:"profile"`
	Settings *models.SiteSettings `json:"settings"`
	Palette  theme.Palette        `json:"palette"`
}

type HomePage struct {
	Featured []models.Project `json:"featured"`
}

type ExperiencePage struct {
	Experiences []models.Experience `json:"experiences"`
	Educations  []models.Education  `json:"educations"`
}

// PublicService serves read-only page data through the page cache.
type PublicService struct {
	profiles    *ProfileService
	settings    *SiteSettingsService
	experiences *ExperienceService
	educations  *EducationService
	projects    *ProjectService
	cache       cache.Cache
	ttl         time.Duration
}

func NewPublicService(db *gorm.DB, themes *theme.Table, c cache.Cache, ttl time.Duration) *PublicService {
	if c == nil {
		c = cache.Noop{}
	}
	return &PublicService{
		profiles:    NewProfileService(db),
		settings:    NewSiteSettingsService(db, themes),
		experiences: NewExperienceService(db),
		educations:  NewEducationService(db),
		projects:    NewProjectService(db),
		cache:       c,
		ttl:         ttl,
	}
}

func (s *PublicService) Site(ctx context.Context) (*SiteContext, error) {
	return cache.Remember(ctx, s.cache, PublicCachePrefix+"site", s.ttl, func() (*SiteContext, error) {
		profile, err := s.profiles.Get()
		if err != nil {
			return nil, err
		}
		settings, err := s.settings.Get()
		if err != nil {
			return nil, err
		}
		return &SiteContext{
			Profile:  profile,
			Settings: settings,
			Palette:  s.settings.PaletteFor(settings),
		}, nil
	})
}

func (s *PublicService) Home(ctx context.Context) (*HomePage, error) {
	return cache.Remember(ctx, s.cache, PublicCachePrefix+"home", s.ttl, func() (*HomePage, error) {
		featured, err := s.projects.ListFeatured()
		if err != nil {
			return nil, err
		}
		return &HomePage{Featured: featured}, nil
	})
}

func (s *PublicService) Experience(ctx context.Context) (*ExperiencePage, error) {
	return cache.Remember(ctx, s.cache, PublicCachePrefix+"experience", s.ttl, func() (*ExperiencePage, error) {
		experiences, err := s.experiences.List()
		if err != nil {
			return nil, err
		}
		educations, err := s.educations.List()
		if err != nil {
			return nil, err
		}
		return &ExperiencePage{Experiences: experiences, Educations: educations}, nil
	})
}

func (s *PublicService) Projects(ctx context.Context) ([]models.Project, error) {
	return cache.Remember(ctx, s.cache, PublicCachePrefix+"projects", s.ttl, s.projects.List)
}

// Project looks a project up by slug. Misses are not cached.
func (s *PublicService) Project(ctx context.Context, slug string) (*models.Project, error) {
	return cache.Remember(ctx, s.cache, PublicCachePrefix+"project:"+slug, s.ttl, func() (*models.Project, error) {
		return s.projects.GetBySlug(slug)
	})
}

// Invalidate drops every cached public page.
func (s *PublicService) Invalidate(ctx context.Context) error {
	return s.cache.DelPrefix(ctx, PublicCachePrefix)
}
