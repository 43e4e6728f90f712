package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserDisabled       = errors.New("user is disabled")
	ErrWrongPassword      = errors.New("incorrect old password")
)

// ListRequest is the shared pagination query.
type ListRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

func (r *ListRequest) normalize(defaultSize int) {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PageSize <= 0 {
		r.PageSize = defaultSize
	}
}

func (r *ListRequest) offset() int {
	return (r.Page - 1) * r.PageSize
}

// loadSingleton reads the row with the fixed id, creating it from defaults
// first if it does not exist. Concurrent first calls converge on one row.
func loadSingleton[T any](db *gorm.DB, id uint, defaults *T) (*T, error) {
	var row T
	err := db.First(&row, id).Error
	if err == nil {
		return &row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(defaults).Error; err != nil {
		return nil, err
	}
	if err := db.First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
