package handlers

import (
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio-service/internal/services"
)

// CertificateHandler defines handlers for managing certificates.
type CertificateHandler struct {
	Service *services.CertificateService
	Uploads *services.UploadService
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(service *services.CertificateService, uploads *services.UploadService) *CertificateHandler {
	return &CertificateHandler{Service: service, Uploads: uploads}
}

// ListCertificates handles GET /certificates, most recently issued first.
// @Summary List all certificates
// @Tags certificates
// @Produce json
// @Success 200 {array} models.Certificate "List of all certificates"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /certificates [get]
func (h *CertificateHandler) ListCertificates(c *fiber.Ctx) error {
	certs, err := h.Service.List()
	if err != nil {
		log.Printf("Error listing certificates: %v", err)
		return fail(c, err)
	}
	return c.JSON(certs)
}

// CreateCertificate handles POST /certificates. The imageUrl must come from
// a prior call to the certificate upload endpoint.
// @Summary Create a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Success 201 {object} models.Certificate "Certificate created"
// @Failure 400 {object} map[string]interface{} "Missing title or imageUrl"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /certificates [post]
func (h *CertificateHandler) CreateCertificate(c *fiber.Ctx) error {
	var input services.CertificateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid request body",
		})
	}
	cert, err := h.Service.Create(input)
	if err != nil {
		log.Printf("Error creating certificate: %v", err)
		return fail(c, err)
	}
	log.Printf("Created certificate: ID=%s, Title=%s", cert.ID, cert.Title)
	return c.Status(fiber.StatusCreated).JSON(cert)
}

type certificateUpdateRequest struct {
	ID string `json:"id"`
	services.CertificatePatch
}

// UpdateCertificate handles PUT /certificates to partially update a
// certificate. An omitted imageUrl keeps the stored image; the superseded
// storage object is never deleted.
// @Summary Update a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Success 200 {object} models.Certificate "Updated certificate"
// @Failure 400 {object} map[string]interface{} "Missing ID"
// @Failure 404 {object} map[string]interface{} "Certificate not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /certificates [put]
func (h *CertificateHandler) UpdateCertificate(c *fiber.Ctx) error {
	var req certificateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid request body",
		})
	}
	if req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": MissingIdError,
		})
	}
	certID, err := uuid.Parse(req.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}
	cert, err := h.Service.Update(certID, req.CertificatePatch)
	if err != nil {
		log.Printf("Error updating certificate: ID=%s, Error=%v", certID, err)
		return fail(c, err)
	}
	log.Printf("Updated certificate: ID=%s", certID)
	return c.JSON(cert)
}

// DeleteCertificate handles DELETE /certificates?id=.
// @Summary Delete a certificate
// @Tags certificates
// @Produce json
// @Param id query string true "Certificate ID"
// @Success 200 {object} map[string]interface{} "Deletion confirmation"
// @Failure 400 {object} map[string]interface{} "Missing or invalid ID"
// @Failure 404 {object} map[string]interface{} "Certificate not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /certificates [delete]
func (h *CertificateHandler) DeleteCertificate(c *fiber.Ctx) error {
	idStr := c.Query("id")
	if idStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": MissingIdError,
		})
	}
	certID, err := uuid.Parse(idStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}
	if err := h.Service.Delete(certID); err != nil {
		log.Printf("Error deleting certificate: ID=%s, Error=%v", certID, err)
		return fail(c, err)
	}
	log.Printf("Deleted certificate: ID=%s", certID)
	return c.JSON(fiber.Map{"success": true})
}

// UploadImage handles POST /certificates/upload for the single certificate
// image. Replacing an image is done by uploading a new one and saving the
// returned URL on the record.
// @Summary Upload a certificate image
// @Tags certificates
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]interface{} "Uploaded image URL"
// @Failure 400 {object} map[string]interface{} "No file received"
// @Failure 500 {object} map[string]interface{} "Upload failed"
// @Router /certificates/upload [post]
func (h *CertificateHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "no file received",
		})
	}
	files, err := readUploadFiles([]*multipart.FileHeader{fileHeader})
	if err != nil {
		log.Printf("Failed to read uploaded file: %v", err)
		return fail(c, err)
	}
	url, err := h.Uploads.UploadOne(c.Context(), services.CategoryCertificates, files[0])
	if err != nil {
		log.Printf("Certificate image upload failed: %v", err)
		return fail(c, err)
	}
	log.Printf("Uploaded certificate image: %s", url)
	return c.JSON(fiber.Map{"url": url})
}
