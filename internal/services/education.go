package services

import (
	"strings"

	"github.com/darkred-portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type EducationService struct {
	db *gorm.DB
}

func NewEducationService(db *gorm.DB) *EducationService {
	return &EducationService{db: db}
}

type EducationRequest struct {
	Institution  string `json:"institution" binding:"required,max=150"`
	Degree       string `json:"degree" binding:"required,max=150"`
	FieldOfStudy string `json:"field_of_study" binding:"max=150"`
	StartYear    int    `json:"start_year" binding:"required,min=1900,max=2200"`
	EndYear      *int   `json:"end_year" binding:"omitempty,min=1900,max=2200"`
	ResultOrCGPA string `json:"result_or_cgpa" binding:"max=50"`
	Description  string `json:"description"`
}

func (r *EducationRequest) apply(e *models.Education) {
	e.Institution = strings.TrimSpace(r.Institution)
	e.Degree = strings.TrimSpace(r.Degree)
	e.FieldOfStudy = strings.TrimSpace(r.FieldOfStudy)
	e.StartYear = r.StartYear
	e.EndYear = r.EndYear
	e.ResultOrCGPA = strings.TrimSpace(r.ResultOrCGPA)
	e.Description = r.Description
}

// List returns ongoing entries first, then the most recently finished.
func (s *EducationService) List() ([]models.Education, error) {
	var items []models.Education
	if err := s.db.Order(models.EducationOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *EducationService) GetByID(id uint) (*models.Education, error) {
	var edu models.Education
	if err := s.db.First(&edu, id).Error; err != nil {
		return nil, err
	}
	return &edu, nil
}

func (s *EducationService) Create(req *EducationRequest) (*models.Education, error) {
	var edu models.Education
	req.apply(&edu)
	if err := edu.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.Create(&edu).Error; err != nil {
		return nil, err
	}
	return &edu, nil
}

func (s *EducationService) Update(id uint, req *EducationRequest) (*models.Education, error) {
	edu, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	req.apply(edu)
	if err := edu.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.Save(edu).Error; err != nil {
		return nil, err
	}
	return edu, nil
}

func (s *EducationService) Delete(id uint) error {
	result := s.db.Delete(&models.Education{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
