package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-service/internal/repository/memory"
	"portfolio-service/internal/services"
)

func newResumeService(uploader services.Uploader) (*services.ResumeService, *memory.ResumeRepository) {
	repo := memory.NewResumeRepository()
	uploads := services.NewUploadService(uploader, nil)
	return services.NewResumeService(repo, uploads), repo
}

func pdf(content string) services.UploadFile {
	return services.UploadFile{Name: content + ".pdf", Data: []byte(content)}
}

func activeCount(t *testing.T, repo *memory.ResumeRepository) int {
	t.Helper()
	resumes, err := repo.List()
	require.NoError(t, err)
	count := 0
	for _, r := range resumes {
		if r.IsActive {
			count++
		}
	}
	return count
}

func TestResumeService_FirstRunIsEmpty(t *testing.T) {
	svc, _ := newResumeService(&fakeUploader{})

	url, err := svc.LatestURL()
	require.NoError(t, err)
	assert.Equal(t, "", url)
}

func TestResumeService_UploadActivates(t *testing.T) {
	svc, repo := newResumeService(&fakeUploader{})

	url, err := svc.UploadAndActivate(context.Background(), pdf("v1"))
	require.NoError(t, err)
	assert.Equal(t, "https://store.test/v1", url)

	latest, err := svc.LatestURL()
	require.NoError(t, err)
	assert.Equal(t, url, latest)
	assert.Equal(t, 1, activeCount(t, repo))
}

func TestResumeService_NewVersionSupersedesOld(t *testing.T) {
	svc, repo := newResumeService(&fakeUploader{})

	for _, version := range []string{"v1", "v2", "v3"} {
		url, err := svc.UploadAndActivate(context.Background(), pdf(version))
		require.NoError(t, err)

		latest, err := svc.LatestURL()
		require.NoError(t, err)
		assert.Equal(t, url, latest)
		assert.Equal(t, 1, activeCount(t, repo))
	}

	// Superseded versions are retained, just inactive.
	resumes, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, resumes, 3)
}

func TestResumeService_FailedUploadLeavesStateUntouched(t *testing.T) {
	svc, repo := newResumeService(&fakeUploader{failOnData: "v2"})

	_, err := svc.UploadAndActivate(context.Background(), pdf("v1"))
	require.NoError(t, err)

	_, err = svc.UploadAndActivate(context.Background(), pdf("v2"))
	require.Error(t, err)

	latest, err := svc.LatestURL()
	require.NoError(t, err)
	assert.Equal(t, "https://store.test/v1", latest)
	assert.Equal(t, 1, activeCount(t, repo))
}
