package services

import (
	"time"

	"github.com/google/uuid"

	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
)

// MessageService provides operations over contact messages. Messages are
// immutable: create, list and delete only.
type MessageService struct {
	Repo repository.MessageRepository
}

// NewMessageService creates a new MessageService with the given repository.
func NewMessageService(repo repository.MessageRepository) *MessageService {
	return &MessageService{Repo: repo}
}

// MessageInput carries the fields of a contact form submission.
type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"message"`
}

// List returns all messages, newest first.
func (s *MessageService) List() ([]models.Message, error) {
	return s.Repo.List()
}

// Create validates that all contact fields are present and stores the message.
func (s *MessageService) Create(input MessageInput) (*models.Message, error) {
	if input.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if input.Email == "" {
		return nil, &ValidationError{Field: "email"}
	}
	if input.Content == "" {
		return nil, &ValidationError{Field: "message"}
	}
	message := &models.Message{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Content:   input.Content,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// Delete removes a message by ID.
func (s *MessageService) Delete(id uuid.UUID) error {
	return s.Repo.Delete(id)
}
