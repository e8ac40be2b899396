package directory

import (
	"fmt"

	"logitrans-backend/logger"
	clientModel "logitrans-backend/models/client"
	"logitrans-backend/types"
	"logitrans-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StoreClient registers a new client account. Phone is the natural key.
func (dc *DirectoryController) StoreClient(c *fiber.Ctx) error {
	var req types.ClientUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return dc.badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return dc.badRequest(c, err.Error())
	}
	if req.Password == "" {
		return dc.badRequest(c, "password is required")
	}

	var existing clientModel.Client
	err := dc.DB.Where("phone = ?", req.Phone).First(&existing).Error
	if err == nil {
		return dc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Client with this phone already exists",
			Data:    nil,
		})
	}
	if err != gorm.ErrRecordNotFound {
		return dc.dbError(c, "Database error while checking existing client", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return dc.dbError(c, "Failed to hash client password", err)
	}

	client := clientModel.Client{
		Phone:        req.Phone,
		Fio:          req.Fio,
		Address:      req.Address,
		PasswordHash: hash,
	}
	if err := dc.DB.Create(&client).Error; err != nil {
		return dc.dbError(c, "Failed to create client", err)
	}

	logger.Success(fmt.Sprintf("Client created: %s", client.Phone))
	return dc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Client created",
		Data:    client,
	})
}

// UpdateClient overwrites a client's fio, address and optionally password.
// The phone in the URL is the lookup key and cannot be changed here.
func (dc *DirectoryController) UpdateClient(c *fiber.Ctx) error {
	phone := c.Params("phone")
	if phone == "" {
		return dc.badRequest(c, "phone is required")
	}

	var req types.ClientUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return dc.badRequest(c, "Invalid request body")
	}
	if req.Fio == "" {
		return dc.badRequest(c, "fio is required")
	}

	var client clientModel.Client
	if err := dc.DB.Where("phone = ?", phone).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return dc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Client not found",
				Data:    nil,
			})
		}
		return dc.dbError(c, "Database error while fetching client", err)
	}

	updates := map[string]interface{}{
		"fio":     req.Fio,
		"address": req.Address,
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return dc.dbError(c, "Failed to hash client password", err)
		}
		updates["password_hash"] = hash
	}

	if err := dc.DB.Model(&client).Updates(updates).Error; err != nil {
		return dc.dbError(c, "Failed to update client", err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Client updated",
		Data:    client,
	})
}

// DeleteClient removes a client account by phone.
func (dc *DirectoryController) DeleteClient(c *fiber.Ctx) error {
	phone := c.Params("phone")
	if phone == "" {
		return dc.badRequest(c, "phone is required")
	}

	result := dc.DB.Where("phone = ?", phone).Delete(&clientModel.Client{})
	if result.Error != nil {
		return dc.dbError(c, "Failed to delete client", result.Error)
	}
	if result.RowsAffected == 0 {
		return dc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Client not found",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Client deleted",
		Data:    nil,
	})
}

// ListClients returns all client accounts for the admin screen.
func (dc *DirectoryController) ListClients(c *fiber.Ctx) error {
	var clients []clientModel.Client
	if err := dc.DB.Order("fio").Find(&clients).Error; err != nil {
		return dc.dbError(c, "Failed to list clients", err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Clients fetched",
		Data:    clients,
	})
}
