package directory

import (
	"fmt"

	"logitrans-backend/logger"
	pointModel "logitrans-backend/models/point"
	shipmentModel "logitrans-backend/models/shipment"
	"logitrans-backend/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StorePoint creates a new point. Name is the natural key.
func (dc *DirectoryController) StorePoint(c *fiber.Ctx) error {
	var req types.PointUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return dc.badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return dc.badRequest(c, err.Error())
	}

	var existing pointModel.Point
	err := dc.DB.Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		return dc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Point with this name already exists",
			Data:    nil,
		})
	}
	if err != gorm.ErrRecordNotFound {
		return dc.dbError(c, "Database error while checking existing point", err)
	}

	point := pointModel.Point{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := dc.DB.Create(&point).Error; err != nil {
		return dc.dbError(c, "Failed to create point", err)
	}

	logger.Success(fmt.Sprintf("Point created: %s", point.Name))
	return dc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Point created",
		Data:    point,
	})
}

// UpdatePoint overwrites a point's phone and address. Name stays fixed since
// live shipments reference it.
func (dc *DirectoryController) UpdatePoint(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return dc.badRequest(c, "name is required")
	}

	var req types.PointUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return dc.badRequest(c, "Invalid request body")
	}

	var point pointModel.Point
	if err := dc.DB.Where("name = ?", name).First(&point).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return dc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Point not found",
				Data:    nil,
			})
		}
		return dc.dbError(c, "Database error while fetching point", err)
	}

	updates := map[string]interface{}{
		"phone":   req.Phone,
		"address": req.Address,
	}
	if err := dc.DB.Model(&point).Updates(updates).Error; err != nil {
		return dc.dbError(c, "Failed to update point", err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Point updated",
		Data:    point,
	})
}

// DeletePoint removes a point. Deletion is refused while live shipments still
// sit at the point.
func (dc *DirectoryController) DeletePoint(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return dc.badRequest(c, "name is required")
	}

	var liveCount int64
	if err := dc.DB.Model(&shipmentModel.Shipment{}).Where("point_name = ?", name).Count(&liveCount).Error; err != nil {
		return dc.dbError(c, "Database error while counting shipments at point", err)
	}
	if liveCount > 0 {
		return dc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Point still has live shipments",
			Data:    nil,
		})
	}

	result := dc.DB.Where("name = ?", name).Delete(&pointModel.Point{})
	if result.Error != nil {
		return dc.dbError(c, "Failed to delete point", result.Error)
	}
	if result.RowsAffected == 0 {
		return dc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Point not found",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Point deleted",
		Data:    nil,
	})
}

// ListPoints returns all points ordered by name; the booking screens use it
// to populate their pickers.
func (dc *DirectoryController) ListPoints(c *fiber.Ctx) error {
	var points []pointModel.Point
	if err := dc.DB.Order("name").Find(&points).Error; err != nil {
		return dc.dbError(c, "Failed to list points", err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Points fetched",
		Data:    points,
	})
}
