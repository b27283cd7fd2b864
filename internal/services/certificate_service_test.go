package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-service/internal/repository/memory"
	"portfolio-service/internal/services"
)

func TestCertificateService_CreateRequiresTitleAndImage(t *testing.T) {
	svc := services.NewCertificateService(memory.NewCertificateRepository())

	var validationErr *services.ValidationError

	_, err := svc.Create(services.CertificateInput{Issuer: "ACME"})
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.Create(services.CertificateInput{Title: "Cert"})
	assert.ErrorAs(t, err, &validationErr)
}

func TestCertificateService_CreateDefaultsIssuedAt(t *testing.T) {
	svc := services.NewCertificateService(memory.NewCertificateRepository())

	cert, err := svc.Create(services.CertificateInput{
		Title:    "Cert",
		ImageUrl: "https://store.test/cert.png",
	})
	require.NoError(t, err)
	assert.False(t, cert.IssuedAt.IsZero())
}

func TestCertificateService_UpdateOmittedImageKept(t *testing.T) {
	svc := services.NewCertificateService(memory.NewCertificateRepository())

	cert, err := svc.Create(services.CertificateInput{
		Title:    "Cert",
		Issuer:   "ACME",
		ImageUrl: "https://store.test/cert.png",
	})
	require.NoError(t, err)

	updated, err := svc.Update(cert.ID, services.CertificatePatch{
		Description: strPtr("updated"),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://store.test/cert.png", updated.ImageUrl)
	assert.Equal(t, "ACME", updated.Issuer)
	assert.Equal(t, "updated", updated.Description)
}

func TestCertificateService_UpdateRejectsEmptyImage(t *testing.T) {
	svc := services.NewCertificateService(memory.NewCertificateRepository())

	cert, err := svc.Create(services.CertificateInput{
		Title:    "Cert",
		ImageUrl: "https://store.test/cert.png",
	})
	require.NoError(t, err)

	_, err = svc.Update(cert.ID, services.CertificatePatch{ImageUrl: strPtr("")})
	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCertificateService_ListByIssueDate(t *testing.T) {
	svc := services.NewCertificateService(memory.NewCertificateRepository())

	older := time.Now().Add(-24 * time.Hour)
	newer := time.Now()

	_, err := svc.Create(services.CertificateInput{
		Title: "older", ImageUrl: "u1", IssuedAt: &older,
	})
	require.NoError(t, err)
	_, err = svc.Create(services.CertificateInput{
		Title: "newer", ImageUrl: "u2", IssuedAt: &newer,
	})
	require.NoError(t, err)

	certs, err := svc.List()
	require.NoError(t, err)
	require.Len(t, certs, 2)
	assert.Equal(t, "newer", certs[0].Title)
	assert.Equal(t, "older", certs[1].Title)
}
