package handlers

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"portfolio-service/internal/repository"
	"portfolio-service/internal/services"
)

const InvalidUuidError = "invalid UUID"
const MissingIdError = "ID required"

// fail maps a domain error to its status code and renders the standard
// error payload.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error": true, "message": err.Error(),
	})
}

func statusForError(err error) int {
	var validationErr *services.ValidationError
	var limitErr *services.LimitExceededError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &limitErr):
		return fiber.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// readUploadFiles drains multipart file headers into memory buffers,
// preserving their order in the request.
func readUploadFiles(headers []*multipart.FileHeader) ([]services.UploadFile, error) {
	files := make([]services.UploadFile, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, services.UploadFile{Name: header.Filename, Data: data})
	}
	return files, nil
}
