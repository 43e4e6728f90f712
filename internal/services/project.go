package services

import (
	"strings"

	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/pkg/slug"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectRequest struct {
	Title            string `json:"title" binding:"required,max=150"`
	Slug             string `json:"slug" binding:"max=160"`
	ShortDescription string `json:"short_description" binding:"required,max=255"`
	LongDescription  string `json:"long_description"`
	TechStack        string `json:"tech_stack" binding:"required,max=255"`
	GithubURL        string `json:"github_url" binding:"omitempty,url,max=500"`
	LiveURL          string `json:"live_url" binding:"omitempty,url,max=500"`
	IsFeatured       bool   `json:"is_featured"`
}

func (r *ProjectRequest) apply(p *models.Project) {
	p.Title = strings.TrimSpace(r.Title)
	p.ShortDescription = strings.TrimSpace(r.ShortDescription)
	p.LongDescription = r.LongDescription
	p.TechStack = strings.Join(models.SplitTags(r.TechStack), ", ")
	p.GithubURL = r.GithubURL
	p.LiveURL = r.LiveURL
	p.IsFeatured = r.IsFeatured
}

// List returns every project, newest first.
func (s *ProjectService) List() ([]models.Project, error) {
	var items []models.Project
	if err := s.db.Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ProjectService) ListFeatured() ([]models.Project, error) {
	var items []models.Project
	if err := s.db.Where("is_featured = ?", true).Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) GetBySlug(value string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("slug = ?", value).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Create stores a new project. A concurrent insert of the same slug fails
// with gorm.ErrDuplicatedKey from the unique index.
func (s *ProjectService) Create(req *ProjectRequest) (*models.Project, error) {
	var project models.Project
	req.apply(&project)
	if err := s.assignSlug(&project, req.Slug); err != nil {
		return nil, err
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Update(id uint, req *ProjectRequest) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	req.apply(project)
	if err := s.assignSlug(project, req.Slug); err != nil {
		return nil, err
	}
	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) SetImage(id uint, url string) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(project).Update("image", url).Error; err != nil {
		return nil, err
	}
	project.Image = url
	return project, nil
}

func (s *ProjectService) Delete(id uint) error {
	result := s.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// assignSlug keeps a submitted slug (lowercased, must be canonical) or derives
// one from the title, probing base, base-2, ... among other projects.
func (s *ProjectService) assignSlug(project *models.Project, requested string) error {
	requested = strings.ToLower(strings.TrimSpace(requested))
	if requested != "" {
		if !slug.Valid(requested) {
			return &models.ValidationError{Field: "slug", Reason: models.ReasonInvalidSlug}
		}
		project.Slug = requested
		return nil
	}

	value, err := slug.Unique(slug.Base(project.Title), func(candidate string) (bool, error) {
		return s.slugTaken(candidate, project.ID)
	})
	if err != nil {
		return err
	}
	project.Slug = value
	return nil
}

func (s *ProjectService) slugTaken(candidate string, selfID uint) (bool, error) {
	var count int64
	query := s.db.Model(&models.Project{}).Where("slug = ?", candidate)
	if selfID != 0 {
		query = query.Where("id <> ?", selfID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
