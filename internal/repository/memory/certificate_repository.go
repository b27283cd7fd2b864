package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
)

// CertificateRepository is an in-memory implementation of repository.CertificateRepository.
type CertificateRepository struct {
	mu    sync.RWMutex
	certs map[uuid.UUID]models.Certificate
}

// NewCertificateRepository creates a new in-memory certificate repository.
func NewCertificateRepository() *CertificateRepository {
	return &CertificateRepository{certs: make(map[uuid.UUID]models.Certificate)}
}

// Create adds a new certificate.
func (r *CertificateRepository) Create(cert *models.Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.certs[cert.ID] = *cert
	return nil
}

// GetByID retrieves a certificate by ID.
func (r *CertificateRepository) GetByID(id uuid.UUID) (*models.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cert, exists := r.certs[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return &cert, nil
}

// List returns all certificates, most recently issued first.
func (r *CertificateRepository) List() ([]models.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]models.Certificate, 0, len(r.certs))
	for _, cert := range r.certs {
		result = append(result, cert)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].IssuedAt.After(result[j].IssuedAt)
	})
	return result, nil
}

// Update replaces an existing certificate.
func (r *CertificateRepository) Update(cert *models.Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.certs[cert.ID]; !exists {
		return repository.ErrNotFound
	}
	r.certs[cert.ID] = *cert
	return nil
}

// Delete removes a certificate by ID.
func (r *CertificateRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.certs[id]; !exists {
		return repository.ErrNotFound
	}
	delete(r.certs, id)
	return nil
}
