package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3d-debian/portfolio-backend/models"
)

func insertProjectFixture(title string) models.InsertProject {
	return models.InsertProject{
		Title:       title,
		Description: "A description long enough to satisfy validation.",
		ImageURL:    "https://img.example.com/p.png",
		Category:    models.CategoryWeb,
		Tags:        []string{"go"},
	}
}

func TestMemoryDatabaseSeedsOnCreation(t *testing.T) {
	db := NewMemory()

	projects, err := db.ProjectRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 6)
	for i, p := range projects {
		assert.Equal(t, i+1, p.ID)
	}

	reviews, err := db.ReviewRepo().FindApproved()
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.True(t, reviews[0].Approved)

	links, err := db.SocialLinkRepo().Find()
	require.NoError(t, err)
	require.NotNil(t, links)
	assert.Equal(t, models.SocialLinkID, links.ID)
}

func TestProjectRepoAddAssignsSequentialIDs(t *testing.T) {
	db := NewMemory()
	repo := db.ProjectRepo()

	first, err := repo.Add(insertProjectFixture("First"))
	require.NoError(t, err)
	second, err := repo.Add(insertProjectFixture("Second"))
	require.NoError(t, err)

	assert.Equal(t, 7, first.ID)
	assert.Equal(t, 8, second.ID)

	got, err := repo.FindByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *first, *got)
}

func TestProjectRepoNeverReusesIDs(t *testing.T) {
	db := NewMemory()
	repo := db.ProjectRepo()

	created, err := repo.Add(insertProjectFixture("Ephemeral"))
	require.NoError(t, err)

	deleted, err := repo.Delete(created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	next, err := repo.Add(insertProjectFixture("Successor"))
	require.NoError(t, err)
	assert.Equal(t, created.ID+1, next.ID)
}

func TestProjectRepoFindByIDMissing(t *testing.T) {
	db := NewMemory()

	got, err := db.ProjectRepo().FindByID(999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProjectRepoDeleteMissing(t *testing.T) {
	db := NewMemory()

	deleted, err := db.ProjectRepo().Delete(999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestProjectRepoFindByCategory(t *testing.T) {
	db := NewMemory()
	repo := db.ProjectRepo()

	webProjects, err := repo.FindByCategory(models.CategoryWeb)
	require.NoError(t, err)
	require.NotEmpty(t, webProjects)
	for _, p := range webProjects {
		assert.Equal(t, models.CategoryWeb, p.Category)
	}

	none, err := repo.FindByCategory("no-such-category")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProjectRepoUpdateReplacesEveryField(t *testing.T) {
	db := NewMemory()
	repo := db.ProjectRepo()

	insert := insertProjectFixture("Before")
	live := "https://live.example.com"
	insert.LiveURL = &live
	created, err := repo.Add(insert)
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, insertProjectFixture("After"))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "After", updated.Title)
	assert.Nil(t, updated.LiveURL)
}

func TestReviewRepoAddForcesUnapproved(t *testing.T) {
	db := NewMemory()
	repo := db.ReviewRepo()

	created, err := repo.Add(models.InsertReview{
		Name:    "Client",
		Email:   "client@example.com",
		Rating:  4,
		Comment: "A comment long enough to satisfy validation.",
	})
	require.NoError(t, err)
	assert.False(t, created.Approved)
	assert.False(t, created.CreatedAt.IsZero())

	approved, err := repo.FindApproved()
	require.NoError(t, err)
	for _, r := range approved {
		assert.NotEqual(t, created.ID, r.ID)
	}

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReviewRepoApprove(t *testing.T) {
	db := NewMemory()
	repo := db.ReviewRepo()

	created, err := repo.Add(models.InsertReview{
		Name:    "Client",
		Email:   "client@example.com",
		Rating:  4,
		Comment: "A comment long enough to satisfy validation.",
	})
	require.NoError(t, err)

	approved, err := repo.Approve(created.ID)
	require.NoError(t, err)
	require.NotNil(t, approved)
	assert.True(t, approved.Approved)

	missing, err := repo.Approve(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepoRejectsDuplicateUsername(t *testing.T) {
	db := NewMemory()
	repo := db.UserRepo()

	_, err := repo.Add(models.InsertUser{Username: "admin", Password: "hashed-password"})
	require.NoError(t, err)

	_, err = repo.Add(models.InsertUser{Username: "admin", Password: "other-password"})
	require.Error(t, err)

	user, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "hashed-password", user.Password)

	none, err := repo.FindByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSocialLinkRepoUpdateKeepsSingleton(t *testing.T) {
	db := NewMemory()
	repo := db.SocialLinkRepo()

	updated, err := repo.Update(models.InsertSocialLink{
		Github: "https://github.com/updated",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SocialLinkID, updated.ID)
	assert.Equal(t, "https://github.com/updated", updated.Github)
	assert.Empty(t, updated.Linkedin)

	got, err := repo.Find()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.SocialLinkID, got.ID)
	assert.Equal(t, "https://github.com/updated", got.Github)
}

func TestMessageRepoOrdersByID(t *testing.T) {
	db := NewMemory()
	repo := db.MessageRepo()

	for _, subject := range []string{"a", "b", "c"} {
		_, err := repo.Add(models.InsertMessage{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Subject: subject,
			Message: "A message body long enough to satisfy validation.",
		})
		require.NoError(t, err)
	}

	messages, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{messages[0].Subject, messages[1].Subject, messages[2].Subject})
}
