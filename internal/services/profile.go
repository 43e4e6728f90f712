package services

import (
	"fmt"
	"strings"

	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/internal/storage"
	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type UpdateProfileRequest struct {
	FullName         string `json:"full_name" binding:"required,max=150"`
	Headline         string `json:"headline" binding:"required,max=200"`
	Location         string `json:"location" binding:"max=150"`
	Email            string `json:"email" binding:"required,email,max=255"`
	Phone            string `json:"phone" binding:"max=30"`
	LinkedinURL      string `json:"linkedin_url" binding:"omitempty,url,max=500"`
	GithubURL        string `json:"github_url" binding:"omitempty,url,max=500"`
	FacebookURL      string `json:"facebook_url" binding:"omitempty,url,max=500"`
	InstagramURL     string `json:"instagram_url" binding:"omitempty,url,max=500"`
	About            string `json:"about" binding:"required"`
	ProfileImageLink string `json:"profile_image_link" binding:"omitempty,url,max=500"`
	FaviconLink      string `json:"favicon_link" binding:"omitempty,url,max=500"`
	Skills           string `json:"skills"`
}

// Get returns the owner profile, creating the placeholder row on first use.
func (s *ProfileService) Get() (*models.Profile, error) {
	return loadSingleton(s.db, models.ProfileID, models.DefaultProfile())
}

func (s *ProfileService) Update(req *UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.Get()
	if err != nil {
		return nil, err
	}

	profile.FullName = strings.TrimSpace(req.FullName)
	profile.Headline = strings.TrimSpace(req.Headline)
	profile.Location = strings.TrimSpace(req.Location)
	profile.Email = strings.TrimSpace(req.Email)
	profile.Phone = strings.TrimSpace(req.Phone)
	profile.LinkedinURL = req.LinkedinURL
	profile.GithubURL = req.GithubURL
	profile.FacebookURL = req.FacebookURL
	profile.InstagramURL = req.InstagramURL
	profile.About = req.About
	profile.ProfileImageLink = req.ProfileImageLink
	profile.FaviconLink = req.FaviconLink
	profile.SkillList = strings.Join(models.SplitTags(req.Skills), ", ")

	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// SetAsset records the URL of an uploaded CV, profile image or favicon.
func (s *ProfileService) SetAsset(kind storage.Kind, url string) (*models.Profile, error) {
	profile, err := s.Get()
	if err != nil {
		return nil, err
	}

	var column string
	switch kind {
	case storage.KindCV:
		column, profile.CVFile = "cv_file", url
	case storage.KindProfileImage:
		column, profile.ProfileImage = "profile_image", url
	case storage.KindFavicon:
		column, profile.Favicon = "favicon", url
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnsupportedKind, kind)
	}

	if err := s.db.Model(profile).Update(column, url).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
