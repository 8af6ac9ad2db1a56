package models

// User represents an admin account. The password field holds a bcrypt hash
// and is never serialized.
type User struct {
	ID       int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Username string `json:"username" db:"username" gorm:"type:text;not null;unique"`
	Password string `json:"-" db:"password" gorm:"type:text;not null"`
}

// InsertUser is the shape of a User before an id is assigned.
type InsertUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
