package cargo

import (
	"fmt"

	"logitrans-backend/logger"
	"logitrans-backend/metrics"
	"logitrans-backend/middleware"
	cargoModel "logitrans-backend/models/cargo"
	shipmentModel "logitrans-backend/models/shipment"
	"logitrans-backend/services/lifecycle"
	"logitrans-backend/services/pricing"
	"logitrans-backend/types"
	"logitrans-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CargoController handles cargo CRUD and price quoting
type CargoController struct {
	Lifecycle *lifecycle.Service
	Pricing   *pricing.Service
	Metrics   *metrics.Metrics
	Logger    *logger.AsyncLogger
}

// NewCargoController creates a new cargo controller
func NewCargoController(lc *lifecycle.Service, pr *pricing.Service, m *metrics.Metrics, asyncLogger *logger.AsyncLogger) *CargoController {
	return &CargoController{
		Lifecycle: lc,
		Pricing:   pr,
		Metrics:   m,
		Logger:    asyncLogger,
	}
}

// Helper function to send response and log in one call
func (cc *CargoController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	cc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

func (cc *CargoController) badRequest(c *fiber.Ctx, message string) error {
	return cc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
		Data:    nil,
	})
}

func (cc *CargoController) domainError(c *fiber.Ctx, operation string, err error) error {
	status, msg := utils.MapDomainError(err)
	if status == fiber.StatusInternalServerError {
		logger.Error(fmt.Sprintf("Operation %s failed", operation), err)
	}
	cc.Metrics.ErrorsCount.WithLabelValues(operation).Inc()
	return cc.sendResponseWithLog(c, status, types.ApiResponse{
		Status:  status,
		Message: msg,
		Data:    nil,
	})
}

// Quote computes the delivery price for the operator's form without creating
// anything.
func (cc *CargoController) Quote(c *fiber.Ctx) error {
	var req types.PriceQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return cc.badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return cc.badRequest(c, err.Error())
	}

	price, err := cc.Pricing.Quote(req.Mass, cargoModel.Type(req.Type), cargoModel.Delivery(req.Delivery), req.Packaging, req.Insurance)
	if err != nil {
		return cc.badRequest(c, err.Error())
	}
	cc.Metrics.PriceQuotes.Inc()

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Price calculated",
		Data:    fiber.Map{"price": price.StringFixed(2)},
	})
}

// Store creates a cargo. When the request carries a point and slot the origin
// shipment is booked in the same transaction; that is the operator's booking
// flow. Without them only the cargo record is created.
func (cc *CargoController) Store(c *fiber.Ctx) error {
	var req types.CargoCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return cc.badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return cc.badRequest(c, err.Error())
	}

	in := lifecycle.CreateCargoInput{
		Track:         req.Track,
		Type:          cargoModel.Type(req.Type),
		Delivery:      cargoModel.Delivery(req.Delivery),
		SenderPhone:   req.SenderPhone,
		ReceiverPhone: req.ReceiverPhone,
		Mass:          req.Mass,
		Packaging:     req.Packaging,
		Insurance:     req.Insurance,
		CreatedBy:     middlewareFio(c),
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return cc.badRequest(c, "Invalid price format")
		}
		in.Price = &price
	}
	if req.DeclaredValue != nil {
		dv, err := decimal.NewFromString(*req.DeclaredValue)
		if err != nil {
			return cc.badRequest(c, "Invalid declared_value format")
		}
		in.DeclaredValue = &dv
	}

	// Cargo-only creation for the admin screen.
	if req.PointName == "" && req.Slot == "" {
		created, err := cc.Lifecycle.CreateCargo(c.Context(), in)
		if err != nil {
			return cc.domainError(c, "cargo_create", err)
		}
		cc.Metrics.CargoCreated.Inc()

		return cc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
			Status:  fiber.StatusCreated,
			Message: "Cargo created",
			Data:    created,
		})
	}

	if req.PointName == "" || req.Slot == "" {
		return cc.badRequest(c, "point_name and slot must be provided together")
	}

	shipIn := lifecycle.CreateShipmentInput{
		CargoTrack:  req.Track,
		PointName:   req.PointName,
		Slot:        req.Slot,
		Status:      shipmentModel.StatusBooked,
		EmployeeFio: middlewareFio(c),
	}
	createdCargo, createdShipment, err := cc.Lifecycle.CreateCargoWithShipment(c.Context(), in, shipIn)
	if err != nil {
		return cc.domainError(c, "cargo_booking", err)
	}
	cc.Metrics.CargoCreated.Inc()
	cc.Metrics.ShipmentsCreated.Inc()

	logger.Success(fmt.Sprintf("Cargo %s booked at %s", createdCargo.Track, createdShipment.PointName))
	return cc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Cargo booked",
		Data: fiber.Map{
			"cargo":    createdCargo,
			"shipment": createdShipment,
		},
	})
}

// Show returns a single cargo by track.
func (cc *CargoController) Show(c *fiber.Ctx) error {
	track := c.Params("track")
	if track == "" {
		return cc.badRequest(c, "track is required")
	}

	cargo, err := cc.Lifecycle.GetCargo(c.Context(), track)
	if err != nil {
		return cc.domainError(c, "cargo_show", err)
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cargo fetched",
		Data:    cargo,
	})
}

// Update overwrites a cargo administratively, price included. The provided
// price is stored as-is with no recomputation.
func (cc *CargoController) Update(c *fiber.Ctx) error {
	track := c.Params("track")
	if track == "" {
		return cc.badRequest(c, "track is required")
	}

	var req types.CargoUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return cc.badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return cc.badRequest(c, err.Error())
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return cc.badRequest(c, "Invalid price format")
	}

	in := lifecycle.UpdateCargoInput{
		Track:     track,
		Type:      cargoModel.Type(req.Type),
		Delivery:  cargoModel.Delivery(req.Delivery),
		Price:     price,
		Mass:      req.Mass,
		Packaging: req.Packaging,
		Insurance: req.Insurance,
	}
	if req.DeclaredValue != nil {
		dv, err := decimal.NewFromString(*req.DeclaredValue)
		if err != nil {
			return cc.badRequest(c, "Invalid declared_value format")
		}
		in.DeclaredValue = &dv
	}

	updated, err := cc.Lifecycle.UpdateCargo(c.Context(), in)
	if err != nil {
		return cc.domainError(c, "cargo_update", err)
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cargo updated",
		Data:    updated,
	})
}

// Delete removes a cargo. Refused while live shipments still reference it.
func (cc *CargoController) Delete(c *fiber.Ctx) error {
	track := c.Params("track")
	if track == "" {
		return cc.badRequest(c, "track is required")
	}

	if err := cc.Lifecycle.DeleteCargo(c.Context(), track); err != nil {
		return cc.domainError(c, "cargo_delete", err)
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cargo deleted",
		Data:    nil,
	})
}

// middlewareFio pulls the authenticated user's fio out of the token claims.
func middlewareFio(c *fiber.Ctx) string {
	return middleware.ClaimString(c, "fio")
}
