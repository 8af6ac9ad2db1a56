package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/3d-debian/portfolio-backend/errs"
	"github.com/3d-debian/portfolio-backend/models"
)

// UserRepo holds admin accounts. Usernames are unique; Add fails with a
// conflict error on a duplicate.
type UserRepo interface {
	FindByID(id int) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Add(insert models.InsertUser) (*models.User, error)
}

type gormUserRepo struct {
	db *gorm.DB
}

func newGormUserRepo(db *gorm.DB) *gormUserRepo {
	return &gormUserRepo{db}
}

func (r *gormUserRepo) FindByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepo) Add(insert models.InsertUser) (*models.User, error) {
	existing, err := r.FindByUsername(insert.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewAlreadyExists("user")
	}

	user := models.User{
		Username: insert.Username,
		Password: insert.Password,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
