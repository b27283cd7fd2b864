package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-service/internal/models"
)

// ResumeRepository is an in-memory implementation of repository.ResumeRepository.
// ActivateNew holds the lock across both steps, matching the transactional
// guarantee of the GORM implementation.
type ResumeRepository struct {
	mu      sync.RWMutex
	resumes map[uuid.UUID]models.Resume
}

// NewResumeRepository creates a new in-memory resume repository.
func NewResumeRepository() *ResumeRepository {
	return &ResumeRepository{resumes: make(map[uuid.UUID]models.Resume)}
}

// ActivateNew deactivates every active version and creates a new active one.
func (r *ResumeRepository) ActivateNew(url string) (*models.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, resume := range r.resumes {
		if resume.IsActive {
			resume.IsActive = false
			r.resumes[id] = resume
		}
	}
	resume := models.Resume{
		ID:        uuid.New(),
		FileUrl:   url,
		IsActive:  true,
		UpdatedAt: time.Now(),
	}
	r.resumes[resume.ID] = resume
	return &resume, nil
}

// GetActive returns the active version, or nil when none exists.
func (r *ResumeRepository) GetActive() (*models.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, resume := range r.resumes {
		if resume.IsActive {
			active := resume
			return &active, nil
		}
	}
	return nil, nil
}

// List returns all versions, newest first.
func (r *ResumeRepository) List() ([]models.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]models.Resume, 0, len(r.resumes))
	for _, resume := range r.resumes {
		result = append(result, resume)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}
