package services

import (
	"context"

	"portfolio-service/internal/repository"
)

// ResumeService manages résumé versions on top of the upload pipeline.
// It maintains the invariant that at most one version is active at any
// time: every successful upload supersedes the previous active version.
type ResumeService struct {
	Repo    repository.ResumeRepository
	Uploads *UploadService
}

// NewResumeService creates a new ResumeService.
func NewResumeService(repo repository.ResumeRepository, uploads *UploadService) *ResumeService {
	return &ResumeService{Repo: repo, Uploads: uploads}
}

// UploadAndActivate stores the document in object storage, then activates
// it as the new résumé version. The activation deactivates the old version
// and creates the new one in a single transaction; if it fails after the
// upload succeeded, the stored object is orphaned but no record references it.
func (s *ResumeService) UploadAndActivate(ctx context.Context, file UploadFile) (string, error) {
	url, err := s.Uploads.UploadOne(ctx, CategoryResume, file)
	if err != nil {
		return "", err
	}
	if _, err := s.Repo.ActivateNew(url); err != nil {
		return "", err
	}
	return url, nil
}

// LatestURL returns the URL of the active version, or the empty string
// when no résumé has been uploaded yet. The empty state is not an error.
func (s *ResumeService) LatestURL() (string, error) {
	resume, err := s.Repo.GetActive()
	if err != nil {
		return "", err
	}
	if resume == nil {
		return "", nil
	}
	return resume.FileUrl, nil
}
