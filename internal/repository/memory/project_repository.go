// Package memory provides in-memory repository implementations backed by
// maps and a mutex. They honor the same contracts as the GORM
// implementations and are used by the test suite.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
)

// ProjectRepository is an in-memory implementation of repository.ProjectRepository.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]models.Project
}

// NewProjectRepository creates a new in-memory project repository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: make(map[uuid.UUID]models.Project)}
}

// Create adds a new project.
func (r *ProjectRepository) Create(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ID] = *project
	return nil
}

// GetByID retrieves a project by ID.
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	project, exists := r.projects[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return &project, nil
}

// List returns all projects, newest first.
func (r *ProjectRepository) List() ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]models.Project, 0, len(r.projects))
	for _, project := range r.projects {
		result = append(result, project)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Update replaces an existing project.
func (r *ProjectRepository) Update(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.projects[project.ID]; !exists {
		return repository.ErrNotFound
	}
	r.projects[project.ID] = *project
	return nil
}

// Delete removes a project by ID.
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.projects[id]; !exists {
		return repository.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}
