package directory

import (
	"logitrans-backend/logger"
	"logitrans-backend/types"
	"logitrans-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DirectoryController handles the reference-data CRUD screens: clients,
// points and employees.
type DirectoryController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewDirectoryController creates a new directory controller
func NewDirectoryController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *DirectoryController {
	return &DirectoryController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Helper function to send response and log in one call
func (dc *DirectoryController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	dc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

func (dc *DirectoryController) badRequest(c *fiber.Ctx, message string) error {
	return dc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
		Data:    nil,
	})
}

func (dc *DirectoryController) dbError(c *fiber.Ctx, message string, err error) error {
	logger.Error(message, err)
	return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Database error",
		Data:    nil,
	})
}
