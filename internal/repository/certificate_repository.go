package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-service/internal/models"
)

// CertificateRepository defines persistence operations for Certificate records.
type CertificateRepository interface {
	Create(cert *models.Certificate) error
	GetByID(id uuid.UUID) (*models.Certificate, error)
	List() ([]models.Certificate, error)
	Update(cert *models.Certificate) error
	Delete(id uuid.UUID) error
}

// CertificateRepositoryImpl provides methods to interact with the Certificate model in the database.
type CertificateRepositoryImpl struct {
	db *gorm.DB
}

// NewCertificateRepository creates a new CertificateRepositoryImpl instance with the provided GORM database connection.
func NewCertificateRepository(db *gorm.DB) *CertificateRepositoryImpl {
	return &CertificateRepositoryImpl{db: db}
}

// Create creates a new Certificate in the database.
func (r *CertificateRepositoryImpl) Create(cert *models.Certificate) error {
	return r.db.Create(cert).Error
}

// GetByID retrieves a Certificate by its ID from the database.
func (r *CertificateRepositoryImpl) GetByID(id uuid.UUID) (*models.Certificate, error) {
	var cert models.Certificate
	err := r.db.First(&cert, "id = ?", id).Error
	return &cert, err
}

// List retrieves all Certificates from the database, most recently issued first.
func (r *CertificateRepositoryImpl) List() ([]models.Certificate, error) {
	certs := make([]models.Certificate, 0)
	err := r.db.Order("issued_at DESC").Find(&certs).Error
	return certs, err
}

// Update updates an existing Certificate in the database.
func (r *CertificateRepositoryImpl) Update(cert *models.Certificate) error {
	return r.db.Save(cert).Error
}

// Delete deletes a Certificate by its ID from the database.
func (r *CertificateRepositoryImpl) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Certificate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
