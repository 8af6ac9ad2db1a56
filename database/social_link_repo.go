package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/3d-debian/portfolio-backend/models"
)

// SocialLinkRepo holds the SocialLink singleton. Update always writes the
// fixed slot (models.SocialLinkID) and refreshes updatedAt, so exactly one
// record exists no matter how many times it is called.
type SocialLinkRepo interface {
	Find() (*models.SocialLink, error)
	Update(insert models.InsertSocialLink) (*models.SocialLink, error)
}

func socialLinkFromInsert(insert models.InsertSocialLink) models.SocialLink {
	return models.SocialLink{
		ID:        models.SocialLinkID,
		Github:    insert.Github,
		Linkedin:  insert.Linkedin,
		Facebook:  insert.Facebook,
		Instagram: insert.Instagram,
		UpdatedAt: time.Now().UTC(),
	}
}

type gormSocialLinkRepo struct {
	db *gorm.DB
}

func newGormSocialLinkRepo(db *gorm.DB) *gormSocialLinkRepo {
	return &gormSocialLinkRepo{db}
}

func (r *gormSocialLinkRepo) Find() (*models.SocialLink, error) {
	var links models.SocialLink
	err := r.db.First(&links, models.SocialLinkID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &links, nil
}

func (r *gormSocialLinkRepo) Update(insert models.InsertSocialLink) (*models.SocialLink, error) {
	links := socialLinkFromInsert(insert)
	if err := r.db.Save(&links).Error; err != nil {
		return nil, err
	}
	return &links, nil
}
