package memory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-service/internal/repository/memory"
)

func TestResumeRepository_ActivateNewKeepsSingleActive(t *testing.T) {
	repo := memory.NewResumeRepository()

	for i := 1; i <= 4; i++ {
		url := fmt.Sprintf("https://store.test/resume_v%d.pdf", i)
		created, err := repo.ActivateNew(url)
		require.NoError(t, err)
		assert.True(t, created.IsActive)

		active, err := repo.GetActive()
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, url, active.FileUrl)

		resumes, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, resumes, i)

		activeCount := 0
		for _, r := range resumes {
			if r.IsActive {
				activeCount++
			}
		}
		assert.Equal(t, 1, activeCount)
	}
}

func TestResumeRepository_GetActiveEmpty(t *testing.T) {
	repo := memory.NewResumeRepository()

	active, err := repo.GetActive()
	require.NoError(t, err)
	assert.Nil(t, active)
}
