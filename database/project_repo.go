package database

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/3d-debian/portfolio-backend/models"
)

// ProjectRepo holds canonical Project state. FindByID, Update and Delete
// signal an absent id with a nil record / false, never with an error.
type ProjectRepo interface {
	FindAll() ([]models.Project, error)
	FindByID(id int) (*models.Project, error)
	FindByCategory(category string) ([]models.Project, error)
	Add(insert models.InsertProject) (*models.Project, error)
	Update(id int, insert models.InsertProject) (*models.Project, error)
	Delete(id int) (bool, error)
}

// projectFromInsert fills the mutable fields of a Project from its insertable
// shape. Absent optional URLs stay nil so they render as explicit JSON null,
// and a missing tags list normalizes to an empty one.
func projectFromInsert(id int, insert models.InsertProject) models.Project {
	tags := insert.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Project{
		ID:          id,
		Title:       insert.Title,
		Description: insert.Description,
		Category:    insert.Category,
		ImageURL:    insert.ImageURL,
		Tags:        datatypes.NewJSONSlice(tags),
		LiveURL:     insert.LiveURL,
		CodeURL:     insert.CodeURL,
	}
}

type gormProjectRepo struct {
	db *gorm.DB
}

func newGormProjectRepo(db *gorm.DB) *gormProjectRepo {
	return &gormProjectRepo{db}
}

func (r *gormProjectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("id").Find(&projects).Error
	return projects, err
}

func (r *gormProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepo) FindByCategory(category string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("category = ?", category).Order("id").Find(&projects).Error
	return projects, err
}

func (r *gormProjectRepo) Add(insert models.InsertProject) (*models.Project, error) {
	project := projectFromInsert(0, insert)
	if err := r.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepo) Update(id int, insert models.InsertProject) (*models.Project, error) {
	existing, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	project := projectFromInsert(id, insert)
	// Save writes every column so cleared optional URLs persist as NULL.
	if err := r.db.Save(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepo) Delete(id int) (bool, error) {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
