package handlers

import (
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"portfolio-service/internal/services"
)

// ResumeHandler defines handlers for the résumé document.
type ResumeHandler struct {
	Service *services.ResumeService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(service *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{Service: service}
}

// Latest handles GET /resume/latest. The url is null until the first
// upload; the empty state is not an error.
// @Summary Get the active résumé URL
// @Tags resume
// @Produce json
// @Success 200 {object} map[string]interface{} "Active résumé URL or null"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /resume/latest [get]
func (h *ResumeHandler) Latest(c *fiber.Ctx) error {
	url, err := h.Service.LatestURL()
	if err != nil {
		log.Printf("Error fetching active resume: %v", err)
		return fail(c, err)
	}
	if url == "" {
		return c.JSON(fiber.Map{"url": nil})
	}
	return c.JSON(fiber.Map{"url": url})
}

// Upload handles POST /resume/upload. A successful upload becomes the one
// active version; the previous version is kept but deactivated.
// @Summary Upload a new résumé version
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Résumé document (PDF)"
// @Success 200 {object} map[string]interface{} "New active résumé URL"
// @Failure 400 {object} map[string]interface{} "No file or not a PDF"
// @Failure 500 {object} map[string]interface{} "Upload or activation failed"
// @Router /resume/upload [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "no file received",
		})
	}
	files, err := readUploadFiles([]*multipart.FileHeader{fileHeader})
	if err != nil {
		log.Printf("Failed to read uploaded resume: %v", err)
		return fail(c, err)
	}
	url, err := h.Service.UploadAndActivate(c.Context(), files[0])
	if err != nil {
		log.Printf("Resume upload failed: %v", err)
		return fail(c, err)
	}
	log.Printf("Activated new resume version: %s", url)
	return c.JSON(fiber.Map{"success": true, "url": url})
}
