package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	_ "portfolio-service/internal/models"
	"portfolio-service/internal/services"
)

// ProjectHandler defines handlers for managing portfolio projects.
type ProjectHandler struct {
	Service *services.ProjectService
	Uploads *services.UploadService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service *services.ProjectService, uploads *services.UploadService) *ProjectHandler {
	return &ProjectHandler{Service: service, Uploads: uploads}
}

// ListProjects handles GET /projects to retrieve all projects, newest first.
// @Summary List all projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project "List of all projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.Service.List()
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return fail(c, err)
	}
	return c.JSON(projects)
}

// CreateProject handles POST /projects to create a new project.
// The imageUrls sequence must arrive pre-merged from the upload endpoint.
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Success 201 {object} models.Project "Project created"
// @Failure 400 {object} map[string]interface{} "Missing title or too many images"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid request body",
		})
	}
	project, err := h.Service.Create(input)
	if err != nil {
		log.Printf("Error creating project: %v", err)
		return fail(c, err)
	}
	log.Printf("Created project: ID=%s, Title=%s", project.ID, project.Title)
	return c.Status(fiber.StatusCreated).JSON(project)
}

type projectUpdateRequest struct {
	ID string `json:"id"`
	services.ProjectPatch
}

// UpdateProject handles PUT /projects to partially update a project.
// Omitted fields are left unchanged; a present imageUrls replaces the
// whole sequence.
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} map[string]interface{} "Missing ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	var req projectUpdateRequest
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
	projectID, err := uuid.Parse(req.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}
	project, err := h.Service.Update(projectID, req.ProjectPatch)
	if err != nil {
		log.Printf("Error updating project: ID=%s, Error=%v", projectID, err)
		return fail(c, err)
	}
	log.Printf("Updated project: ID=%s", projectID)
	return c.JSON(project)
}

// DeleteProject handles DELETE /projects?id= to remove a project.
// Referenced storage objects are intentionally left in place.
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id query string true "Project ID"
// @Success 200 {object} map[string]interface{} "Deletion confirmation"
// @Failure 400 {object} map[string]interface{} "Missing or invalid ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	idStr := c.Query("id")
	if idStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": MissingIdError,
		})
	}
	projectID, err := uuid.Parse(idStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}
	if err := h.Service.Delete(projectID); err != nil {
		log.Printf("Error deleting project: ID=%s, Error=%v", projectID, err)
		return fail(c, err)
	}
	log.Printf("Deleted project: ID=%s", projectID)
	return c.JSON(fiber.Map{"success": true})
}

// UploadImages handles POST /projects/upload to upload a batch of project
// images. Files upload concurrently; the response preserves request order.
// Retained URLs of an existing gallery may be passed as "existing" form
// values and are prepended to the result; retained+new is capped at 5 and
// checked before any upload starts.
// @Summary Upload project images
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Image files (up to 5 total)"
// @Success 200 {object} map[string]interface{} "Merged image URLs in display order"
// @Failure 400 {object} map[string]interface{} "No files or limit exceeded"
// @Failure 500 {object} map[string]interface{} "Upload batch failed"
// @Router /projects/upload [post]
func (h *ProjectHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "failed to read form: " + err.Error(),
		})
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		headers = form.File["file"]
	}
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "no files received",
		})
	}
	retained := form.Value["existing"]

	files, err := readUploadFiles(headers)
	if err != nil {
		log.Printf("Failed to read uploaded files: %v", err)
		return fail(c, err)
	}
	urls, err := h.Uploads.UploadAndMerge(c.Context(), services.CategoryProjects, retained, files)
	if err != nil {
		log.Printf("Project image upload failed: %v", err)
		return fail(c, err)
	}
	log.Printf("Uploaded %d project images (%d retained)", len(files), len(retained))
	return c.JSON(fiber.Map{"urls": urls})
}
