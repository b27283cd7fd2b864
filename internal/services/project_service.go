package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
)

// ProjectService provides business operations over portfolio projects.
type ProjectService struct {
	Repo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService with the given repository.
func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{Repo: repo}
}

// ProjectInput carries the fields for creating a project. ImageUrls must
// arrive pre-merged (see ImageSet); the sequence is stored as-is.
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageUrls   []string `json:"imageUrls"`
	TechStack   []string `json:"techStack"`
	LiveLink    string   `json:"liveLink"`
	GithubLink  string   `json:"githubLink"`
}

// ProjectPatch carries a partial update. Nil fields are left unchanged;
// a non-nil ImageUrls replaces the whole sequence.
type ProjectPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ImageUrls   *[]string `json:"imageUrls"`
	TechStack   *[]string `json:"techStack"`
	LiveLink    *string   `json:"liveLink"`
	GithubLink  *string   `json:"githubLink"`
}

// List returns all projects, newest first.
func (s *ProjectService) List() ([]models.Project, error) {
	return s.Repo.List()
}

// Create validates the input and stores a new project with defaults for
// omitted optional fields.
func (s *ProjectService) Create(input ProjectInput) (*models.Project, error) {
	if input.Title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if len(input.ImageUrls) > MaxProjectImages {
		return nil, &LimitExceededError{Limit: MaxProjectImages, Requested: len(input.ImageUrls)}
	}
	if input.ImageUrls == nil {
		input.ImageUrls = []string{}
	}
	if input.TechStack == nil {
		input.TechStack = []string{}
	}
	project := &models.Project{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		ImageUrls:   datatypes.NewJSONSlice(input.ImageUrls),
		TechStack:   datatypes.NewJSONSlice(input.TechStack),
		LiveLink:    input.LiveLink,
		GithubLink:  input.GithubLink,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update applies a partial update to an existing project.
func (s *ProjectService) Update(id uuid.UUID, patch ProjectPatch) (*models.Project, error) {
	project, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.ImageUrls != nil {
		if len(*patch.ImageUrls) > MaxProjectImages {
			return nil, &LimitExceededError{Limit: MaxProjectImages, Requested: len(*patch.ImageUrls)}
		}
		project.ImageUrls = datatypes.NewJSONSlice(*patch.ImageUrls)
	}
	if patch.TechStack != nil {
		project.TechStack = datatypes.NewJSONSlice(*patch.TechStack)
	}
	if patch.LiveLink != nil {
		project.LiveLink = *patch.LiveLink
	}
	if patch.GithubLink != nil {
		project.GithubLink = *patch.GithubLink
	}
	if err := s.Repo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project by ID. Deleting a missing id fails with
// repository.ErrNotFound; referenced storage objects are not touched.
func (s *ProjectService) Delete(id uuid.UUID) error {
	return s.Repo.Delete(id)
}
