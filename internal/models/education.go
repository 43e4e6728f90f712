package models

import "strconv"

// Education is an academic entry. A nil EndYear means ongoing.
type Education struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Institution  string `gorm:"size:150;not null" json:"institution"`
	Degree       string `gorm:"size:150;not null" json:"degree"`
	FieldOfStudy string `gorm:"size:150" json:"field_of_study"`
	StartYear    int    `gorm:"not null" json:"start_year"`
	EndYear      *int   `json:"end_year"`
	ResultOrCGPA string `gorm:"column:result_or_cgpa;size:50" json:"result_or_cgpa"`
	Description  string `gorm:"type:text" json:"description"`
}

func (Education) TableName() string { return "educations" }

// EducationOrder lists ongoing entries first, then by end and start year descending.
const EducationOrder = "CASE WHEN end_year IS NULL THEN 0 ELSE 1 END, end_year DESC, start_year DESC"

func (e *Education) Validate() error {
	if e.EndYear != nil && *e.EndYear < e.StartYear {
		return &ValidationError{Field: "end_year", Reason: ReasonEndYearBeforeStart}
	}
	return nil
}

func (e *Education) Period() string {
	if e.EndYear == nil {
		return strconv.Itoa(e.StartYear) + " - Present"
	}
	return strconv.Itoa(e.StartYear) + " - " + strconv.Itoa(*e.EndYear)
}
