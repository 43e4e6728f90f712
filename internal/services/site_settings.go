package services

import (
	"strings"

	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/internal/theme"
	"gorm.io/gorm"
)

type SiteSettingsService struct {
	db     *gorm.DB
	themes *theme.Table
}

// NewSiteSettingsService resolves palettes against themes, or the package
// default table when themes is nil.
func NewSiteSettingsService(db *gorm.DB, themes *theme.Table) *SiteSettingsService {
	return &SiteSettingsService{db: db, themes: themes}
}

func (s *SiteSettingsService) table() *theme.Table {
	if s.themes != nil {
		return s.themes
	}
	return theme.Default()
}

type UpdateSiteSettingsRequest struct {
	SiteTitle              string `json:"site_title" binding:"required,max=150"`
	Theme                  string `json:"theme" binding:"required,max=50"`
	PrimaryColor           string `json:"primary_color" binding:"omitempty,hexcolor"`
	SecondaryColor         string `json:"secondary_color" binding:"omitempty,hexcolor"`
	AccentColor            string `json:"accent_color" binding:"omitempty,hexcolor"`
	AboutPageTitle         string `json:"about_page_title" binding:"max=150"`
	AboutPageSubtitle      string `json:"about_page_subtitle" binding:"max=255"`
	AboutPageContent       string `json:"about_page_content"`
	ExperiencePageTitle    string `json:"experience_page_title" binding:"max=150"`
	ExperiencePageSubtitle string `json:"experience_page_subtitle" binding:"max=255"`
	ExperiencePageContent  string `json:"experience_page_content"`
	ProjectsPageTitle      string `json:"projects_page_title" binding:"max=150"`
	ProjectsPageSubtitle   string `json:"projects_page_subtitle" binding:"max=255"`
	ProjectsPageContent    string `json:"projects_page_content"`
	ContactPageTitle       string `json:"contact_page_title" binding:"max=150"`
	ContactPageSubtitle    string `json:"contact_page_subtitle" binding:"max=255"`
	ContactPageContent     string `json:"contact_page_content"`
}

// Get returns the site settings, creating the default row on first use.
func (s *SiteSettingsService) Get() (*models.SiteSettings, error) {
	return loadSingleton(s.db, models.SiteSettingsID, models.DefaultSiteSettings())
}

func (s *SiteSettingsService) Update(req *UpdateSiteSettingsRequest) (*models.SiteSettings, error) {
	if !s.table().Has(req.Theme) {
		return nil, &models.ValidationError{Field: "theme", Reason: "unknown theme '" + req.Theme + "'"}
	}

	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	settings.SiteTitle = strings.TrimSpace(req.SiteTitle)
	settings.Theme = req.Theme
	settings.PrimaryColor = strings.ToLower(req.PrimaryColor)
	settings.SecondaryColor = strings.ToLower(req.SecondaryColor)
	settings.AccentColor = strings.ToLower(req.AccentColor)
	settings.AboutPageTitle = req.AboutPageTitle
	settings.AboutPageSubtitle = req.AboutPageSubtitle
	settings.AboutPageContent = req.AboutPageContent
	settings.ExperiencePageTitle = req.ExperiencePageTitle
	settings.ExperiencePageSubtitle = req.ExperiencePageSubtitle
	settings.ExperiencePageContent = req.ExperiencePageContent
	settings.ProjectsPageTitle = req.ProjectsPageTitle
	settings.ProjectsPageSubtitle = req.ProjectsPageSubtitle
	settings.ProjectsPageContent = req.ProjectsPageContent
	settings.ContactPageTitle = req.ContactPageTitle
	settings.ContactPageSubtitle = req.ContactPageSubtitle
	settings.ContactPageContent = req.ContactPageContent

	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// PaletteFor resolves the settings' theme and applies its override colours.
func (s *SiteSettingsService) PaletteFor(settings *models.SiteSettings) theme.Palette {
	p := s.table().Resolve(settings.Theme)
	return theme.Overrides{
		Primary:   settings.PrimaryColor,
		Secondary: settings.SecondaryColor,
		Accent:    settings.AccentColor,
	}.Apply(p)
}

// Palette loads the settings and returns their rendered palette.
func (s *SiteSettingsService) Palette() (theme.Palette, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	return s.PaletteFor(settings), nil
}

func (s *SiteSettingsService) Themes() []theme.Info {
	return s.table().Themes()
}

// ThemePalette returns the unmodified palette for id, falling back like Resolve.
func (s *SiteSettingsService) ThemePalette(id string) theme.Palette {
	return s.table().Resolve(id)
}
