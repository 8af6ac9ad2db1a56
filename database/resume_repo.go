package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/3d-debian/portfolio-backend/models"
)

// ResumeRepo holds canonical Resume state. Resumes are append-only.
type ResumeRepo interface {
	FindAll() ([]models.Resume, error)
	Add(insert models.InsertResume) (*models.Resume, error)
}

func resumeFromInsert(insert models.InsertResume) models.Resume {
	return models.Resume{
		Name:            insert.Name,
		Email:           insert.Email,
		ProjectBrief:    insert.ProjectBrief,
		ProjectCategory: insert.ProjectCategory,
		BudgetRange:     insert.BudgetRange,
		ResumeURL:       insert.ResumeURL,
		CreatedAt:       time.Now().UTC(),
	}
}

type gormResumeRepo struct {
	db *gorm.DB
}

func newGormResumeRepo(db *gorm.DB) *gormResumeRepo {
	return &gormResumeRepo{db}
}

func (r *gormResumeRepo) FindAll() ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.Order("id").Find(&resumes).Error
	return resumes, err
}

func (r *gormResumeRepo) Add(insert models.InsertResume) (*models.Resume, error) {
	resume := resumeFromInsert(insert)
	if err := r.db.Create(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}
