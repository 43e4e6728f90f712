package services

import (
	"github.com/darkred-portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	Projects         int64                   `json:"projects"`
	FeaturedProjects int64                   `json:"featured_projects"`
	Experiences      int64                   `json:"experiences"`
	Educations       int64                   `json:"educations"`
	Messages         int64                   `json:"messages"`
	UnreadMessages   int64                   `json:"unread_messages"`
	LatestMessages   []models.ContactMessage `json:"latest_messages"`
}

const latestMessagesLimit = 5

func (s *DashboardService) GetStats() (*DashboardStats, error) {
	var stats DashboardStats

	counts := []struct {
		query *gorm.DB
		dst   *int64
	}{
		{s.db.Model(&models.Project{}), &stats.Projects},
		{s.db.Model(&models.Project{}).Where("is_featured = ?", true), &stats.FeaturedProjects},
		{s.db.Model(&models.Experience{}), &stats.Experiences},
		{s.db.Model(&models.Education{}), &stats.Educations},
		{s.db.Model(&models.ContactMessage{}), &stats.Messages},
		{s.db.Model(&models.ContactMessage{}).Where("is_read = ?", false), &stats.UnreadMessages},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Order("created_at DESC").Order("id DESC").
		Limit(latestMessagesLimit).
		Find(&stats.LatestMessages).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
