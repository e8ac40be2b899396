package auth

import (
	"time"

	"logitrans-backend/constants"
	"logitrans-backend/logger"
	clientModel "logitrans-backend/models/client"
	employeeModel "logitrans-backend/models/employee"
	"logitrans-backend/types"
	"logitrans-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthController handles employee and client authentication
type AuthController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewAuthController creates a new auth controller
func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Helper function to send response and log in one call
func (ac *AuthController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	ac.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// positionPermissions maps an employee position to its permission strings.
func positionPermissions(position employeeModel.Position) []string {
	switch position {
	case employeeModel.PositionDirector:
		return []string{constants.PermDirectorFull}
	case employeeModel.PositionAdministrator:
		return []string{constants.PermAdministratorFull}
	case employeeModel.PositionOperator:
		return []string{constants.PermOperatorFull}
	case employeeModel.PositionWarehouse:
		return []string{constants.PermWarehouseFull}
	case employeeModel.PositionManager:
		return []string{constants.PermManagerFull}
	default:
		return nil
	}
}

// Login authenticates an employee by phone and password and returns a token
// together with the position and fio the desktop client routes on.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	var employee employeeModel.Employee
	err := ac.DB.Where("phone = ?", req.Phone).First(&employee).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Database error during employee login", err)
			return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Database error",
				Data:    nil,
			})
		}
		// Unknown phone and wrong password produce the same answer.
		return ac.invalidCredentials(c)
	}

	ok, err := utils.VerifyPassword(req.Password, employee.PasswordHash)
	if err != nil || !ok {
		return ac.invalidCredentials(c)
	}

	token, err := utils.IssueToken(employee.Uuid, employee.Fio, employee.Position.String(), positionPermissions(employee.Position))
	if err != nil {
		logger.Error("Failed to issue token", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to issue token",
			Data:    nil,
		})
	}

	setAccessCookie(c, token)
	logger.Success("Employee logged in: " + employee.Fio)

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Token:   token,
		Data: types.LoginResponse{
			Position: employee.Position.String(),
			Fio:      employee.Fio,
			Success:  true,
		},
	})
}

// ClientLogin authenticates a client account by phone and password.
func (ac *AuthController) ClientLogin(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	var client clientModel.Client
	err := ac.DB.Where("phone = ?", req.Phone).First(&client).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Database error during client login", err)
			return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Database error",
				Data:    nil,
			})
		}
		return ac.invalidCredentials(c)
	}

	ok, err := utils.VerifyPassword(req.Password, client.PasswordHash)
	if err != nil || !ok {
		return ac.invalidCredentials(c)
	}

	token, err := utils.IssueToken(client.Phone, client.Fio, "client", []string{constants.PermClientFull})
	if err != nil {
		logger.Error("Failed to issue token", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to issue token",
			Data:    nil,
		})
	}

	setAccessCookie(c, token)

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Token:   token,
		Data: types.LoginResponse{
			Fio:     client.Fio,
			Success: true,
		},
	})
}

// LogOut clears the access cookie.
func (ac *AuthController) LogOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
	})
	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Logged out",
		Data:    nil,
	})
}

func (ac *AuthController) invalidCredentials(c *fiber.Ctx) error {
	return ac.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Invalid phone or password",
		Data: types.LoginResponse{
			Success: false,
		},
	})
}

func setAccessCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access",
		Value:    token,
		Expires:  time.Now().Add(8 * time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
	})
}
