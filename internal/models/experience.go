package models

import (
	"time"

	"gorm.io/gorm"
)

// Experience is a work or leadership role. An ongoing role has IsCurrent set
// and no EndDate.
type Experience struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Role         string     `gorm:"size:150;not null" json:"role"`
	Organization string     `gorm:"size:150;not null" json:"organization"`
	Location     string     `gorm:"size:150" json:"location"`
	StartDate    time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsCurrent    bool       `gorm:"default:false" json:"is_current"`
	Description  string     `gorm:"type:text" json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Experience) TableName() string { return "experiences" }

// Validate reports the first date inconsistency, if any.
func (e *Experience) Validate() error {
	if e.IsCurrent && e.EndDate != nil {
		return &ValidationError{Field: "end_date", Reason: ReasonCurrentWithEndDate}
	}
	if !e.IsCurrent && e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return &ValidationError{Field: "end_date", Reason: ReasonEndBeforeStart}
	}
	return nil
}

// Normalize clears EndDate on a current role.
func (e *Experience) Normalize() {
	if e.IsCurrent {
		e.EndDate = nil
	}
}

// BeforeSave runs on every create and save, whether or not Validate was called.
func (e *Experience) BeforeSave(tx *gorm.DB) error {
	e.Normalize()
	return nil
}

// Period renders the date range for display, e.g. "Jan 2022 - Present".
func (e *Experience) Period() string {
	start := e.StartDate.Format("Jan 2006")
	switch {
	case e.IsCurrent:
		return start + " - Present"
	case e.EndDate != nil:
		return start + " - " + e.EndDate.Format("Jan 2006")
	default:
		return start
	}
}
