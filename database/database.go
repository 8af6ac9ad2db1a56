package database

import (
	"gorm.io/gorm"

	"github.com/3d-debian/portfolio-backend/models"
)

// Database aggregates one repository per entity kind. The repositories are
// the only owners of entity state; handlers never touch storage directly.
type Database struct {
	userRepo       UserRepo
	projectRepo    ProjectRepo
	reviewRepo     ReviewRepo
	resumeRepo     ResumeRepo
	messageRepo    MessageRepo
	socialLinkRepo SocialLinkRepo
}

// NewMemory initializes a Database backed by in-memory maps, seeded with the
// sample portfolio content. Ids are process-local and nothing survives a
// restart.
func NewMemory() Database {
	d := Database{
		userRepo:       newMemUserRepo(),
		projectRepo:    newMemProjectRepo(),
		reviewRepo:     newMemReviewRepo(),
		resumeRepo:     newMemResumeRepo(),
		messageRepo:    newMemMessageRepo(),
		socialLinkRepo: newMemSocialLinkRepo(),
	}
	seed(d)
	return d
}

// NewPostgres initializes a Database with each repository using a shared GORM
// database instance. Tables are migrated on startup and the sample content is
// seeded only when the projects table is empty.
func NewPostgres(db *gorm.DB) (Database, error) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Review{},
		&models.Resume{},
		&models.Message{},
		&models.SocialLink{},
	); err != nil {
		return Database{}, err
	}

	d := Database{
		userRepo:       newGormUserRepo(db),
		projectRepo:    newGormProjectRepo(db),
		reviewRepo:     newGormReviewRepo(db),
		resumeRepo:     newGormResumeRepo(db),
		messageRepo:    newGormMessageRepo(db),
		socialLinkRepo: newGormSocialLinkRepo(db),
	}

	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return Database{}, err
	}
	if count == 0 {
		seed(d)
	}

	return d, nil
}

// Accessor methods for each repository

func (d Database) UserRepo() UserRepo {
	return d.userRepo
}

func (d Database) ProjectRepo() ProjectRepo {
	return d.projectRepo
}

func (d Database) ReviewRepo() ReviewRepo {
	return d.reviewRepo
}

func (d Database) ResumeRepo() ResumeRepo {
	return d.resumeRepo
}

func (d Database) MessageRepo() MessageRepo {
	return d.messageRepo
}

func (d Database) SocialLinkRepo() SocialLinkRepo {
	return d.socialLinkRepo
}
