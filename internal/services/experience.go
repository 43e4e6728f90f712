package services

import (
	"strings"
	"time"

	"github.com/darkred-portfolio/backend/internal/models"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type ExperienceService struct {
	db *gorm.DB
}

func NewExperienceService(db *gorm.DB) *ExperienceService {
	return &ExperienceService{db: db}
}

type ExperienceRequest struct {
	Role         string `json:"role" binding:"required,max=150"`
	Organization string `json:"organization" binding:"required,max=150"`
	Location     string `json:"location" binding:"max=150"`
	StartDate    string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	IsCurrent    bool   `json:"is_current"`
	Description  string `json:"description"`
}

func (r *ExperienceRequest) apply(e *models.Experience) error {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return &models.ValidationError{Field: "start_date", Reason: "'start_date' must be a date (YYYY-MM-DD)"}
	}
	var end *time.Time
	if r.EndDate != "" {
		t, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return &models.ValidationError{Field: "end_date", Reason: "'end_date' must be a date (YYYY-MM-DD)"}
		}
		end = &t
	}

	e.Role = strings.TrimSpace(r.Role)
	e.Organization = strings.TrimSpace(r.Organization)
	e.Location = strings.TrimSpace(r.Location)
	e.StartDate = start
	e.EndDate = end
	e.IsCurrent = r.IsCurrent
	e.Description = r.Description
	return nil
}

// List returns every experience, most recent start first.
func (s *ExperienceService) List() ([]models.Experience, error) {
	var items []models.Experience
	if err := s.db.Order("start_date DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ExperienceService) GetByID(id uint) (*models.Experience, error) {
	var exp models.Experience
	if err := s.db.First(&exp, id).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

func (s *ExperienceService) Create(req *ExperienceRequest) (*models.Experience, error) {
	var exp models.Experience
	if err := req.apply(&exp); err != nil {
		return nil, err
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.Create(&exp).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

func (s *ExperienceService) Update(id uint, req *ExperienceRequest) (*models.Experience, error) {
	exp, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := req.apply(exp); err != nil {
		return nil, err
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.Save(exp).Error; err != nil {
		return nil, err
	}
	return exp, nil
}

func (s *ExperienceService) Delete(id uint) error {
	result := s.db.Delete(&models.Experience{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
