package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/3d-debian/portfolio-backend/models"
)

// ReviewRepo holds canonical Review state. New reviews always start
// unapproved with a server-assigned creation time; Approve flips the flag
// and touches nothing else.
type ReviewRepo interface {
	FindAll() ([]models.Review, error)
	FindApproved() ([]models.Review, error)
	Add(insert models.InsertReview) (*models.Review, error)
	Approve(id int) (*models.Review, error)
	Delete(id int) (bool, error)
}

func reviewFromInsert(insert models.InsertReview) models.Review {
	return models.Review{
		Name:        insert.Name,
		Email:       insert.Email,
		Company:     insert.Company,
		Rating:      insert.Rating,
		Comment:     insert.Comment,
		ProjectType: insert.ProjectType,
		CreatedAt:   time.Now().UTC(),
		Approved:    false,
	}
}

type gormReviewRepo struct {
	db *gorm.DB
}

func newGormReviewRepo(db *gorm.DB) *gormReviewRepo {
	return &gormReviewRepo{db}
}

func (r *gormReviewRepo) FindAll() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Order("id").Find(&reviews).Error
	return reviews, err
}

func (r *gormReviewRepo) FindApproved() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("approved = ?", true).Order("id").Find(&reviews).Error
	return reviews, err
}

func (r *gormReviewRepo) Add(insert models.InsertReview) (*models.Review, error) {
	review := reviewFromInsert(insert)
	if err := r.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *gormReviewRepo) Approve(id int) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&review).Update("approved", true).Error; err != nil {
		return nil, err
	}
	review.Approved = true
	return &review, nil
}

func (r *gormReviewRepo) Delete(id int) (bool, error) {
	result := r.db.Delete(&models.Review{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
