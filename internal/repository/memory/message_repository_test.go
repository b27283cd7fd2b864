package memory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
	"portfolio-service/internal/repository/memory"
)

func TestMessageRepository_ListNewestFirst(t *testing.T) {
	repo := memory.NewMessageRepository()

	older := &models.Message{
		ID: uuid.New(), Name: "a", Email: "a@test", Content: "hi",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &models.Message{
		ID: uuid.New(), Name: "b", Email: "b@test", Content: "hello",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(older))
	require.NoError(t, repo.Create(newer))

	messages, err := repo.List()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, newer.ID, messages[0].ID)
	assert.Equal(t, older.ID, messages[1].ID)
}

func TestMessageRepository_DeleteRemovesFromList(t *testing.T) {
	repo := memory.NewMessageRepository()

	message := &models.Message{ID: uuid.New(), Name: "a", Email: "a@test", Content: "hi"}
	require.NoError(t, repo.Create(message))

	require.NoError(t, repo.Delete(message.ID))

	messages, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMessageRepository_DeleteMissingFails(t *testing.T) {
	repo := memory.NewMessageRepository()

	message := &models.Message{ID: uuid.New(), Name: "a", Email: "a@test", Content: "hi"}
	require.NoError(t, repo.Create(message))
	require.NoError(t, repo.Delete(message.ID))

	// Repeated delete is not idempotent-success: the caller must be able
	// to detect a vanished record.
	assert.ErrorIs(t, repo.Delete(message.ID), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(uuid.New()), repository.ErrNotFound)
}
