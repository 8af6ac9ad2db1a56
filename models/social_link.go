package models

import "time"

// SocialLinkID is the fixed slot for the singleton SocialLink row. Only one
// set of links is ever kept; every update overwrites this slot.
const SocialLinkID = 1

// SocialLink represents the site-wide set of social profile URLs
type SocialLink struct {
	ID        int       `json:"id" db:"id" gorm:"primaryKey;not null"`
	Github    string    `json:"github" db:"github" gorm:"type:text;not null"`
	Linkedin  string    `json:"linkedin" db:"linkedin" gorm:"type:text;not null"`
	Facebook  string    `json:"facebook" db:"facebook" gorm:"type:text;not null"`
	Instagram string    `json:"instagram" db:"instagram" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}

// InsertSocialLink is the client-supplied shape of the SocialLink singleton.
// Empty strings are allowed so individual networks can be left blank.
type InsertSocialLink struct {
	Github    string `json:"github" validate:"omitempty,url"`
	Linkedin  string `json:"linkedin" validate:"omitempty,url"`
	Facebook  string `json:"facebook" validate:"omitempty,url"`
	Instagram string `json:"instagram" validate:"omitempty,url"`
}
