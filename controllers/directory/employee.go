package directory

import (
	"fmt"

	"logitrans-backend/logger"
	employeeModel "logitrans-backend/models/employee"
	"logitrans-backend/types"
	"logitrans-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreEmployee registers a new staff member. Phone must be unique; fio is
// display data and may repeat.
func (dc *DirectoryController) StoreEmployee(c *fiber.Ctx) error {
	var req types.EmployeeUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return dc.badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return dc.badRequest(c, err.Error())
	}
	if req.Password == "" {
		return dc.badRequest(c, "password is required")
	}

	position := employeeModel.Position(req.Position)
	if !position.IsValid() {
		return dc.badRequest(c, fmt.Sprintf("unknown position %q", req.Position))
	}

	var existing employeeModel.Employee
	err := dc.DB.Where("phone = ?", req.Phone).First(&existing).Error
	if err == nil {
		return dc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Employee with this phone already exists",
			Data:    nil,
		})
	}
	if err != gorm.ErrRecordNotFound {
		return dc.dbError(c, "Database error while checking existing employee", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return dc.dbError(c, "Failed to hash employee password", err)
	}

	employee := employeeModel.Employee{
		Uuid:         uuid.New().String(),
		Fio:          req.Fio,
		Position:     position,
		Phone:        req.Phone,
		PasswordHash: hash,
	}
	if err := dc.DB.Create(&employee).Error; err != nil {
		return dc.dbError(c, "Failed to create employee", err)
	}

	logger.Success(fmt.Sprintf("Employee created: %s (%s)", employee.Fio, employee.Position))
	return dc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Employee created",
		Data:    employee,
	})
}

// UpdateEmployee overwrites the record(s) matching the fio in the URL. The
// legacy admin screen keys on fio, so all matching rows get the same update.
func (dc *DirectoryController) UpdateEmployee(c *fiber.Ctx) error {
	fio := c.Params("fio")
	if fio == "" {
		return dc.badRequest(c, "fio is required")
	}

	var req types.EmployeeUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return dc.badRequest(c, "Invalid request body")
	}
	if req.Position == "" {
		return dc.badRequest(c, "position is required")
	}

	position := employeeModel.Position(req.Position)
	if !position.IsValid() {
		return dc.badRequest(c, fmt.Sprintf("unknown position %q", req.Position))
	}

	updates := map[string]interface{}{
		"position": position,
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return dc.dbError(c, "Failed to hash employee password", err)
		}
		updates["password_hash"] = hash
	}

	result := dc.DB.Model(&employeeModel.Employee{}).Where("fio = ?", fio).Updates(updates)
	if result.Error != nil {
		return dc.dbError(c, "Failed to update employee", result.Error)
	}
	if result.RowsAffected == 0 {
		return dc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Employee not found",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Employee updated",
		Data:    fiber.Map{"updated": result.RowsAffected},
	})
}

// DeleteEmployee removes the record(s) matching the fio in the URL.
func (dc *DirectoryController) DeleteEmployee(c *fiber.Ctx) error {
	fio := c.Params("fio")
	if fio == "" {
		return dc.badRequest(c, "fio is required")
	}

	result := dc.DB.Where("fio = ?", fio).Delete(&employeeModel.Employee{})
	if result.Error != nil {
		return dc.dbError(c, "Failed to delete employee", result.Error)
	}
	if result.RowsAffected == 0 {
		return dc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Employee not found",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Employee deleted",
		Data:    fiber.Map{"deleted": result.RowsAffected},
	})
}

// ListEmployees returns all staff for the admin screen.
func (dc *DirectoryController) ListEmployees(c *fiber.Ctx) error {
	var employees []employeeModel.Employee
	if err := dc.DB.Order("fio").Find(&employees).Error; err != nil {
		return dc.dbError(c, "Failed to list employees", err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Employees fetched",
		Data:    employees,
	})
}
