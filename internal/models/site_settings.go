package models

import "time"

// SiteSettingsID is the fixed key of the single site settings row.
const SiteSettingsID uint = 1

const DefaultThemeID = "dark_red"

type SiteSettings struct {
	ID                     uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	SiteTitle              string    `gorm:"size:150;not null" json:"site_title"`
	Theme                  string    `gorm:"size:50;not null" json:"theme"`
	PrimaryColor           string    `gorm:"size:20" json:"primary_color"`
	SecondaryColor         string    `gorm:"size:20" json:"secondary_color"`
	AccentColor            string    `gorm:"size:20" json:"accent_color"`
	AboutPageTitle         string    `gorm:"size:150" json:"about_page_title"`
	AboutPageSubtitle      string    `gorm:"size:255" json:"about_page_subtitle"`
	AboutPageContent       string    `gorm:"type:text" json:"about_page_content"`
	ExperiencePageTitle    string    `gorm:"size:150" json:"experience_page_title"`
	ExperiencePageSubtitle string    `gorm:"size:255" json:"experience_page_subtitle"`
	ExperiencePageContent  string    `gorm:"type:text" json:"experience_page_content"`
	ProjectsPageTitle      string    `gorm:"size:150" json:"projects_page_title"`
	ProjectsPageSubtitle   string    `gorm:"size:255" json:"projects_page_subtitle"`
	ProjectsPageContent    string    `gorm:"type:text" json:"projects_page_content"`
	ContactPageTitle       string    `gorm:"size:150" json:"contact_page_title"`
	ContactPageSubtitle    string    `gorm:"size:255" json:"contact_page_subtitle"`
	ContactPageContent     string    `gorm:"type:text" json:"contact_page_content"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string { return "site_settings" }

func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:                     SiteSettingsID,
		SiteTitle:              "My Portfolio",
		Theme:                  DefaultThemeID,
		AboutPageTitle:         "About Me",
		AboutPageSubtitle:      "Get to know me",
		ExperiencePageTitle:    "Experience",
		ExperiencePageSubtitle: "Where I have worked",
		ProjectsPageTitle:      "Projects",
		ProjectsPageSubtitle:   "Things I have built",
		ContactPageTitle:       "Contact",
		ContactPageSubtitle:    "Get in touch",
	}
}
