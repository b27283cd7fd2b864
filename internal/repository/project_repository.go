package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-service/internal/models"
)

// ErrNotFound is returned when an update or delete references a record
// that does not exist. Deleting a missing id fails rather than silently
// succeeding so callers can detect a vanished record.
var ErrNotFound = gorm.ErrRecordNotFound

// ProjectRepository defines persistence operations for Project records.
type ProjectRepository interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	List() ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// ProjectRepositoryImpl provides methods to interact with the Project model in the database.
type ProjectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepositoryImpl instance with the provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepositoryImpl {
	return &ProjectRepositoryImpl{db: db}
}

// Create creates a new Project in the database.
func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a Project by its ID from the database.
func (r *ProjectRepositoryImpl) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	return &project, err
}

// List retrieves all Projects from the database, newest first.
func (r *ProjectRepositoryImpl) List() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// Update updates an existing Project in the database.
func (r *ProjectRepositoryImpl) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a Project by its ID from the database.
func (r *ProjectRepositoryImpl) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
