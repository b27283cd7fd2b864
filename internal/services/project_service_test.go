package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-service/internal/repository"
	"portfolio-service/internal/repository/memory"
	"portfolio-service/internal/services"
)

func strPtr(s string) *string { return &s }

func TestProjectService_CreateAppliesDefaults(t *testing.T) {
	svc := services.NewProjectService(memory.NewProjectRepository())

	project, err := svc.Create(services.ProjectInput{
		Title:       "Portfolio",
		Description: "desc",
		TechStack:   []string{"Go"},
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, project.ID)
	assert.False(t, project.CreatedAt.IsZero())
	assert.NotNil(t, project.ImageUrls)
	assert.Empty(t, project.ImageUrls)
	assert.Equal(t, []string{"Go"}, []string(project.TechStack))
}

func TestProjectService_CreateRequiresTitle(t *testing.T) {
	svc := services.NewProjectService(memory.NewProjectRepository())

	_, err := svc.Create(services.ProjectInput{Description: "no title"})
	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestProjectService_CreateEnforcesImageCap(t *testing.T) {
	svc := services.NewProjectService(memory.NewProjectRepository())

	_, err := svc.Create(services.ProjectInput{
		Title:     "Too many",
		ImageUrls: []string{"1", "2", "3", "4", "5", "6"},
	})
	var limitErr *services.LimitExceededError
	assert.ErrorAs(t, err, &limitErr)
}

func TestProjectService_ListNewestFirst(t *testing.T) {
	svc := services.NewProjectService(memory.NewProjectRepository())

	first, err := svc.Create(services.ProjectInput{Title: "first"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := svc.Create(services.ProjectInput{Title: "second"})
	require.NoError(t, err)

	projects, err := svc.List()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID)
	assert.Equal(t, first.ID, projects[1].ID)
}

func TestProjectService_CreatePreservesImageOrder(t *testing.T) {
	svc := services.NewProjectService(memory.NewProjectRepository())

	urls := []string{"u3", "u1", "u5", "u2"}
	project, err := svc.Create(services.ProjectInput{Title: "ordered", ImageUrls: urls})
	require.NoError(t, err)

	projects, err := svc.List()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, project.ID, projects[0].ID)
	assert.Equal(t, urls, []string(projects[0].ImageUrls))
}

func TestProjectService_UpdatePartialLeavesOtherFields(t *testing.T) {
	svc := services.NewProjectService(memory.NewProjectRepository())

	project, err := svc.Create(services.ProjectInput{
		Title:     "original",
		ImageUrls: []string{"u1", "u2"},
		LiveLink:  "https://live.test",
	})
	require.NoError(t, err)

	updated, err := svc.Update(project.ID, services.ProjectPatch{
		Description: strPtr("new description"),
	})
	require.NoError(t, err)

	assert.Equal(t, "original", updated.Title)
	assert.Equal(t, "new description", updated.Description)
	assert.Equal(t, []string{"u1", "u2"}, []string(updated.ImageUrls))
	assert.Equal(t, "https://live.test", updated.LiveLink)
}

func TestProjectService_UpdateReplacesImageSetWholesale(t *testing.T) {
	svc := services.NewProjectService(memory.NewProjectRepository())

	project, err := svc.Create(services.ProjectInput{
		Title:     "gallery",
		ImageUrls: []string{"u1", "u2", "u3"},
	})
	require.NoError(t, err)

	replacement := []string{"u2", "new"}
	updated, err := svc.Update(project.ID, services.ProjectPatch{ImageUrls: &replacement})
	require.NoError(t, err)
	assert.Equal(t, replacement, []string(updated.ImageUrls))
}

func TestProjectService_UpdateMissingID(t *testing.T) {
	svc := services.NewProjectService(memory.NewProjectRepository())

	_, err := svc.Update(uuid.New(), services.ProjectPatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectService_DeleteMissingIDFails(t *testing.T) {
	svc := services.NewProjectService(memory.NewProjectRepository())

	project, err := svc.Create(services.ProjectInput{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(project.ID))
	assert.ErrorIs(t, svc.Delete(project.ID), repository.ErrNotFound)
}
