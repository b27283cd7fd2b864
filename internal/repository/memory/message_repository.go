package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
)

// MessageRepository is an in-memory implementation of repository.MessageRepository.
type MessageRepository struct {
	mu       sync.RWMutex
	messages map[uuid.UUID]models.Message
}

// NewMessageRepository creates a new in-memory message repository.
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{messages: make(map[uuid.UUID]models.Message)}
}

// Create adds a new message.
func (r *MessageRepository) Create(message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[message.ID] = *message
	return nil
}

// List returns all messages, newest first.
func (r *MessageRepository) List() ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]models.Message, 0, len(r.messages))
	for _, message := range r.messages {
		result = append(result, message)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Delete removes a message by ID.
func (r *MessageRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.messages[id]; !exists {
		return repository.ErrNotFound
	}
	delete(r.messages, id)
	return nil
}
