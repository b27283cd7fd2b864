package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio-service/internal/services"
)

// MessageHandler defines handlers for the contact message inbox.
type MessageHandler struct {
	Service *services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{Service: service}
}

// ListMessages handles GET /contact to retrieve all messages, newest first.
// @Summary List all contact messages
// @Tags contact
// @Produce json
// @Success 200 {array} models.Message "List of all messages"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contact [get]
func (h *MessageHandler) ListMessages(c *fiber.Ctx) error {
	messages, err := h.Service.List()
	if err != nil {
		log.Printf("Error listing messages: %v", err)
		return fail(c, err)
	}
	return c.JSON(messages)
}

// CreateMessage handles POST /contact. All three fields are required.
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Stored message"
// @Failure 400 {object} map[string]interface{} "Missing field"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contact [post]
func (h *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	var input services.MessageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid request body",
		})
	}
	message, err := h.Service.Create(input)
	if err != nil {
		log.Printf("Error creating message: %v", err)
		return fail(c, err)
	}
	log.Printf("Received contact message: ID=%s, From=%s", message.ID, message.Email)
	return c.JSON(fiber.Map{"success": true, "data": message})
}

// DeleteMessage handles DELETE /contact?id=. Deleting an already-deleted
// id fails so optimistic UI removals can be detected and reverted.
// @Summary Delete a contact message
// @Tags contact
// @Produce json
// @Param id query string true "Message ID"
// @Success 200 {object} map[string]interface{} "Deletion confirmation"
// @Failure 400 {object} map[string]interface{} "Missing or invalid ID"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contact [delete]
func (h *MessageHandler) DeleteMessage(c *fiber.Ctx) error {
	idStr := c.Query("id")
	if idStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": MissingIdError,
		})
	}
	messageID, err := uuid.Parse(idStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}
	if err := h.Service.Delete(messageID); err != nil {
		log.Printf("Error deleting message: ID=%s, Error=%v", messageID, err)
		return fail(c, err)
	}
	log.Printf("Deleted message: ID=%s", messageID)
	return c.JSON(fiber.Map{"success": true})
}
