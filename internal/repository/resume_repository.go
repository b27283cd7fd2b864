package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-service/internal/models"
)

// ResumeRepository defines persistence operations for Resume versions.
type ResumeRepository interface {
	// ActivateNew deactivates every currently active version and creates
	// a new active version pointing at url. Both writes happen in one
	// transaction: after a successful return exactly one row is active,
	// and a failed return leaves the previous state untouched.
	ActivateNew(url string) (*models.Resume, error)

	// GetActive returns the single active version, or nil when no
	// version has been uploaded yet.
	GetActive() (*models.Resume, error)

	// List retrieves all versions, most recently updated first.
	List() ([]models.Resume, error)
}

// ResumeRepositoryImpl provides methods to interact with the Resume model in the database.
type ResumeRepositoryImpl struct {
	db *gorm.DB
}

// NewResumeRepository creates a new ResumeRepositoryImpl instance with the provided GORM database connection.
func NewResumeRepository(db *gorm.DB) *ResumeRepositoryImpl {
	return &ResumeRepositoryImpl{db: db}
}

// ActivateNew atomically supersedes the current active version.
func (r *ResumeRepositoryImpl) ActivateNew(url string) (*models.Resume, error) {
	resume := &models.Resume{
		ID:        uuid.New(),
		FileUrl:   url,
		IsActive:  true,
		UpdatedAt: time.Now(),
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Resume{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(resume).Error
	})
	if err != nil {
		return nil, err
	}
	return resume, nil
}

// GetActive returns the active version, or nil without error when none exists.
func (r *ResumeRepositoryImpl) GetActive() (*models.Resume, error) {
	var resume models.Resume
	err := r.db.Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&resume).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// List retrieves all Resume versions from the database, newest first.
func (r *ResumeRepositoryImpl) List() ([]models.Resume, error) {
	resumes := make([]models.Resume, 0)
	err := r.db.Order("updated_at DESC").Find(&resumes).Error
	return resumes, err
}
