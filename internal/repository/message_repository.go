package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-service/internal/models"
)

// MessageRepository defines persistence operations for Message records.
// Messages are immutable, so there is no update method.
type MessageRepository interface {
	Create(message *models.Message) error
	List() ([]models.Message, error)
	Delete(id uuid.UUID) error
}

// MessageRepositoryImpl provides methods to interact with the Message model in the database.
type MessageRepositoryImpl struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepositoryImpl instance with the provided GORM database connection.
func NewMessageRepository(db *gorm.DB) *MessageRepositoryImpl {
	return &MessageRepositoryImpl{db: db}
}

// Create creates a new Message in the database.
func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// List retrieves all Messages from the database, newest first.
func (r *MessageRepositoryImpl) List() ([]models.Message, error) {
	messages := make([]models.Message, 0)
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// Delete deletes a Message by its ID from the database.
func (r *MessageRepositoryImpl) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Message{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
