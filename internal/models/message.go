package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is an inbound contact form submission. Messages are immutable
// once created; the only mutation is deletion.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Content   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
