package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/3d-debian/portfolio-backend/models"
)

// MessageRepo holds canonical Message state. Messages are append-only.
type MessageRepo interface {
	FindAll() ([]models.Message, error)
	Add(insert models.InsertMessage) (*models.Message, error)
}

func messageFromInsert(insert models.InsertMessage) models.Message {
	return models.Message{
		Name:      insert.Name,
		Email:     insert.Email,
		Subject:   insert.Subject,
		Message:   insert.Message,
		CreatedAt: time.Now().UTC(),
	}
}

type gormMessageRepo struct {
	db *gorm.DB
}

func newGormMessageRepo(db *gorm.DB) *gormMessageRepo {
	return &gormMessageRepo{db}
}

func (r *gormMessageRepo) FindAll() ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Order("id").Find(&messages).Error
	return messages, err
}

func (r *gormMessageRepo) Add(insert models.InsertMessage) (*models.Message, error) {
	message := messageFromInsert(insert)
	if err := r.db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}
