package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume is one uploaded résumé document. At most one row has
// IsActive = true at any time; superseded versions are kept inactive.
type Resume struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FileUrl   string    `gorm:"not null" json:"fileUrl"`
	IsActive  bool      `gorm:"index" json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt"`
}
