package services

import (
	"time"

	"github.com/google/uuid"

	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
)

// CertificateService provides business operations over certificates.
type CertificateService struct {
	Repo repository.CertificateRepository
}

// NewCertificateService creates a new CertificateService with the given repository.
func NewCertificateService(repo repository.CertificateRepository) *CertificateService {
	return &CertificateService{Repo: repo}
}

// CertificateInput carries the fields for creating a certificate.
type CertificateInput struct {
	Title       string     `json:"title"`
	Issuer      string     `json:"issuer"`
	ImageUrl    string     `json:"imageUrl"`
	VerifyLink  string     `json:"verifyLink"`
	Description string     `json:"description"`
	IssuedAt    *time.Time `json:"issuedAt"`
}

// CertificatePatch carries a partial update. Nil fields are left unchanged,
// so omitting imageUrl keeps the stored image. Replacing the image requires
// a fresh upload; the superseded object stays in storage.
type CertificatePatch struct {
	Title       *string    `json:"title"`
	Issuer      *string    `json:"issuer"`
	ImageUrl    *string    `json:"imageUrl"`
	VerifyLink  *string    `json:"verifyLink"`
	Description *string    `json:"description"`
	IssuedAt    *time.Time `json:"issuedAt"`
}

// List returns all certificates, most recently issued first.
func (s *CertificateService) List() ([]models.Certificate, error) {
	return s.Repo.List()
}

// Create validates the input and stores a new certificate.
func (s *CertificateService) Create(input CertificateInput) (*models.Certificate, error) {
	if input.Title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if input.ImageUrl == "" {
		return nil, &ValidationError{Field: "imageUrl"}
	}
	issuedAt := time.Now()
	if input.IssuedAt != nil {
		issuedAt = *input.IssuedAt
	}
	cert := &models.Certificate{
		ID:          uuid.New(),
		Title:       input.Title,
		Issuer:      input.Issuer,
		ImageUrl:    input.ImageUrl,
		VerifyLink:  input.VerifyLink,
		Description: input.Description,
		IssuedAt:    issuedAt,
	}
	if err := s.Repo.Create(cert); err != nil {
		return nil, err
	}
	return cert, nil
}

// Update applies a partial update to an existing certificate.
func (s *CertificateService) Update(id uuid.UUID, patch CertificatePatch) (*models.Certificate, error) {
	cert, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		cert.Title = *patch.Title
	}
	if patch.Issuer != nil {
		cert.Issuer = *patch.Issuer
	}
	if patch.ImageUrl != nil {
		if *patch.ImageUrl == "" {
			return nil, &ValidationError{Field: "imageUrl"}
		}
		cert.ImageUrl = *patch.ImageUrl
	}
	if patch.VerifyLink != nil {
		cert.VerifyLink = *patch.VerifyLink
	}
	if patch.Description != nil {
		cert.Description = *patch.Description
	}
	if patch.IssuedAt != nil {
		cert.IssuedAt = *patch.IssuedAt
	}
	if err := s.Repo.Update(cert); err != nil {
		return nil, err
	}
	return cert, nil
}

// Delete removes a certificate by ID.
func (s *CertificateService) Delete(id uuid.UUID) error {
	return s.Repo.Delete(id)
}
