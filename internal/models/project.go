package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a portfolio work entry with an ordered image gallery.
// ImageUrls holds at most MaxProjectImages entries; their order is the
// display order.
type Project struct {
	ID          uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                       `gorm:"not null" json:"title"`
	Description string                       `json:"description"`
	ImageUrls   datatypes.JSONSlice[string]  `json:"imageUrls"`
	TechStack   datatypes.JSONSlice[string]  `json:"techStack"`
	LiveLink    string                       `json:"liveLink"`
	GithubLink  string                       `json:"githubLink"`
	CreatedAt   time.Time                    `json:"createdAt"`
}
