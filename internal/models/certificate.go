package models

import (
	"time"

	"github.com/google/uuid"
)

// Certificate represents an earned certification with exactly one image.
type Certificate struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Issuer      string    `json:"issuer"`
	ImageUrl    string    `gorm:"not null" json:"imageUrl"`
	VerifyLink  string    `json:"verifyLink"`
	Description string    `json:"description"`
	IssuedAt    time.Time `json:"issuedAt"`
}
