package models

import "time"

// Resume represents a hire-me submission with a link to an uploaded file.
// The file itself lives in object storage; only the resulting URL is kept.
type Resume struct {
	ID              int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name            string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email           string    `json:"email" db:"email" gorm:"type:text;not null"`
	ProjectBrief    string    `json:"projectBrief" db:"project_brief" gorm:"type:text;not null"`
	ProjectCategory string    `json:"projectCategory" db:"project_category" gorm:"type:text;not null"`
	BudgetRange     string    `json:"budgetRange" db:"budget_range" gorm:"type:text;not null"`
	ResumeURL       string    `json:"resumeUrl" db:"resume_url" gorm:"type:text;not null"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

// InsertResume is the client-supplied shape of a Resume.
type InsertResume struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	ProjectBrief    string `json:"projectBrief" validate:"required,min=10"`
	ProjectCategory string `json:"projectCategory" validate:"required"`
	BudgetRange     string `json:"budgetRange" validate:"required"`
	ResumeURL       string `json:"resumeUrl" validate:"required,url"`
}
