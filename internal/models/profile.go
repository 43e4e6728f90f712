package models

import (
	"strings"
	"time"
)

// ProfileID is the fixed key of the single owner profile row.
const ProfileID uint = 1

type Profile struct {
	ID               uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	FullName         string    `gorm:"size:150;not null" json:"full_name"`
	Headline         string    `gorm:"size:200;not null" json:"headline"`
	Location         string    `gorm:"size:150" json:"location"`
	Email            string    `gorm:"size:255;not null" json:"email"`
	Phone            string    `gorm:"size:30" json:"phone"`
	LinkedinURL      string    `gorm:"size:500" json:"linkedin_url"`
	GithubURL        string    `gorm:"size:500" json:"github_url"`
	FacebookURL      string    `gorm:"size:500" json:"facebook_url"`
	InstagramURL     string    `gorm:"size:500" json:"instagram_url"`
	About            string    `gorm:"type:text" json:"about"`
	CVFile           string    `gorm:"column:cv_file;size:500" json:"cv_file"`
	ProfileImage     string    `gorm:"size:500" json:"profile_image"`
	ProfileImageLink string    `gorm:"size:500" json:"profile_image_link"`
	Favicon          string    `gorm:"size:500" json:"favicon"`
	FaviconLink      string    `gorm:"size:500" json:"favicon_link"`
	SkillList        string    `gorm:"column:skills;type:text" json:"skills"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// PlaceholderEmail is the address a fresh profile starts with.
const PlaceholderEmail = "you@example.com"

// DefaultProfile is the placeholder row created on first access.
func DefaultProfile() *Profile {
	return &Profile{
		ID:       ProfileID,
		FullName: "Your Name",
		Headline: "Your Headline",
		Email:    PlaceholderEmail,
		About:    "Write your bio here...",
	}
}

func (p *Profile) Skills() []string {
	return SplitTags(p.SkillList)
}

// ImageURL prefers an uploaded image over an external link.
func (p *Profile) ImageURL() string {
	if p.ProfileImage != "" {
		return p.ProfileImage
	}
	return p.ProfileImageLink
}

func (p *Profile) FaviconURL() string {
	if p.Favicon != "" {
		return p.Favicon
	}
	return p.FaviconLink
}

// SplitTags splits a comma-separated list, dropping blanks.
func SplitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
