package models

import "gorm.io/datatypes"

// Project categories accepted by the API.
const (
	CategoryWeb     = "web"
	CategoryApp     = "app"
	CategoryGraphic = "graphic"
	CategoryPoster  = "poster"
)

// Project represents a portfolio project entry
type Project struct {
	ID          int                         `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Category    string                      `json:"category" db:"category" gorm:"type:text;not null;index"`
	ImageURL    string                      `json:"imageUrl" db:"image_url" gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `json:"tags" db:"tags" gorm:"not null"`
	LiveURL     *string                     `json:"liveUrl" db:"live_url" gorm:"type:text"`
	CodeURL     *string                     `json:"codeUrl" db:"code_url" gorm:"type:text"`
}

// InsertProject is the client-supplied shape of a Project, without the
// server-assigned id.
type InsertProject struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required,min=10"`
	Category    string   `json:"category" validate:"required,oneof=web app graphic poster"`
	ImageURL    string   `json:"imageUrl" validate:"required,url"`
	Tags        []string `json:"tags"`
	LiveURL     *string  `json:"liveUrl" validate:"omitempty,url"`
	CodeURL     *string  `json:"codeUrl" validate:"omitempty,url"`
}
