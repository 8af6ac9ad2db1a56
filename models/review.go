package models

import "time"

// Review represents a client testimonial. Reviews are created unapproved and
// only show up publicly once an admin approves them.
type Review struct {
	ID          int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email       string    `json:"email" db:"email" gorm:"type:text;not null"`
	Company     *string   `json:"company" db:"company" gorm:"type:text"`
	Rating      int       `json:"rating" db:"rating" gorm:"not null"`
	Comment     string    `json:"comment" db:"comment" gorm:"type:text;not null"`
	ProjectType *string   `json:"projectType" db:"project_type" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	Approved    bool      `json:"approved" db:"approved" gorm:"not null;default:false"`
}

// InsertReview is the client-supplied shape of a Review. The id, createdAt
// and approved fields are always assigned server-side.
type InsertReview struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Company     *string `json:"company"`
	Rating      int     `json:"rating" validate:"required,min=1,max=5"`
	Comment     string  `json:"comment" validate:"required,min=10"`
	ProjectType *string `json:"projectType"`
}
