package database

import (
	"sort"
	"sync"

	"github.com/3d-debian/portfolio-backend/errs"
	"github.com/3d-debian/portfolio-backend/models"
)

// In-memory repositories. Each repository owns one map from id to record
// guarded by its own RWMutex, plus an auto-increment counter starting at 1.
// Ids are never reused after a delete. Nothing here survives a restart.

type memProjectRepo struct {
	mu     sync.RWMutex
	byID   map[int]models.Project
	nextID int
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{
		byID:   make(map[int]models.Project),
		nextID: 1,
	}
}

func (r *memProjectRepo) FindAll() ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]models.Project, 0, len(r.byID))
	for _, project := range r.byID {
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (r *memProjectRepo) FindByID(id int) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &project, nil
}

func (r *memProjectRepo) FindByCategory(category string) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]models.Project, 0)
	for _, project := range r.byID {
		if project.Category == category {
			projects = append(projects, project)
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (r *memProjectRepo) Add(insert models.InsertProject) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	project := projectFromInsert(id, insert)
	r.byID[id] = project
	return &project, nil
}

func (r *memProjectRepo) Update(id int, insert models.InsertProject) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return nil, nil
	}

	project := projectFromInsert(id, insert)
	r.byID[id] = project
	return &project, nil
}

func (r *memProjectRepo) Delete(id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memReviewRepo struct {
	mu     sync.RWMutex
	byID   map[int]models.Review
	nextID int
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{
		byID:   make(map[int]models.Review),
		nextID: 1,
	}
}

func (r *memReviewRepo) FindAll() ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]models.Review, 0, len(r.byID))
	for _, review := range r.byID {
		reviews = append(reviews, review)
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews, nil
}

func (r *memReviewRepo) FindApproved() ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]models.Review, 0)
	for _, review := range r.byID {
		if review.Approved {
			reviews = append(reviews, review)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews, nil
}

func (r *memReviewRepo) Add(insert models.InsertReview) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review := reviewFromInsert(insert)
	review.ID = r.nextID
	r.nextID++

	r.byID[review.ID] = review
	return &review, nil
}

func (r *memReviewRepo) Approve(id int) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	review.Approved = true
	r.byID[id] = review
	return &review, nil
}

func (r *memReviewRepo) Delete(id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memResumeRepo struct {
	mu     sync.RWMutex
	byID   map[int]models.Resume
	nextID int
}

func newMemResumeRepo() *memResumeRepo {
	return &memResumeRepo{
		byID:   make(map[int]models.Resume),
		nextID: 1,
	}
}

func (r *memResumeRepo) FindAll() ([]models.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resumes := make([]models.Resume, 0, len(r.byID))
	for _, resume := range r.byID {
		resumes = append(resumes, resume)
	}
	sort.Slice(resumes, func(i, j int) bool { return resumes[i].ID < resumes[j].ID })
	return resumes, nil
}

func (r *memResumeRepo) Add(insert models.InsertResume) (*models.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resume := resumeFromInsert(insert)
	resume.ID = r.nextID
	r.nextID++

	r.byID[resume.ID] = resume
	return &resume, nil
}

type memMessageRepo struct {
	mu     sync.RWMutex
	byID   map[int]models.Message
	nextID int
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{
		byID:   make(map[int]models.Message),
		nextID: 1,
	}
}

func (r *memMessageRepo) FindAll() ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]models.Message, 0, len(r.byID))
	for _, message := range r.byID {
		messages = append(messages, message)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages, nil
}

func (r *memMessageRepo) Add(insert models.InsertMessage) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	message := messageFromInsert(insert)
	message.ID = r.nextID
	r.nextID++

	r.byID[message.ID] = message
	return &message, nil
}

type memUserRepo struct {
	mu     sync.RWMutex
	byID   map[int]models.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:   make(map[int]models.User),
		nextID: 1,
	}
}

func (r *memUserRepo) FindByID(id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *memUserRepo) FindByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.byID {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Add(insert models.InsertUser) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.byID {
		if user.Username == insert.Username {
			return nil, errs.NewAlreadyExists("user")
		}
	}

	user := models.User{
		ID:       r.nextID,
		Username: insert.Username,
		Password: insert.Password,
	}
	r.nextID++

	r.byID[user.ID] = user
	return &user, nil
}

type memSocialLinkRepo struct {
	mu   sync.RWMutex
	byID map[int]models.SocialLink
}

func newMemSocialLinkRepo() *memSocialLinkRepo {
	return &memSocialLinkRepo{
		byID: make(map[int]models.SocialLink),
	}
}

func (r *memSocialLinkRepo) Find() (*models.SocialLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	links, ok := r.byID[models.SocialLinkID]
	if !ok {
		return nil, nil
	}
	return &links, nil
}

func (r *memSocialLinkRepo) Update(insert models.InsertSocialLink) (*models.SocialLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	links := socialLinkFromInsert(insert)
	r.byID[models.SocialLinkID] = links
	return &links, nil
}
