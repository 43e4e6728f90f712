package models

import (
	"time"
)

// Project is a portfolio entry. Slug is unique at the storage level; hard
// deletes free it for reuse.
type Project struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:150;not null" json:"title"`
	Slug             string    `gorm:"size:160;not null;uniqueIndex" json:"slug"`
	ShortDescription string    `gorm:"size:255;not null" json:"short_description"`
	LongDescription  string    `gorm:"type:text" json:"long_description"`
	TechStack        string    `gorm:"size:255;not null" json:"tech_stack"` // Python, Django, PostgreSQL
	GithubURL        string    `gorm:"size:500" json:"github_url"`
	LiveURL          string    `gorm:"size:500" json:"live_url"`
	IsFeatured       bool      `gorm:"default:false;index" json:"is_featured"`
	Image            string    `gorm:"size:500" json:"image"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

// TechTags splits TechStack into trimmed, non-empty tags.
func (p *Project) TechTags() []string {
	return SplitTags(p.TechStack)
}
