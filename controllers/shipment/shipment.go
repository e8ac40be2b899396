package shipment

import (
	"fmt"
	"time"

	"logitrans-backend/logger"
	"logitrans-backend/metrics"
	"logitrans-backend/middleware"
	shipmentModel "logitrans-backend/models/shipment"
	"logitrans-backend/services/lifecycle"
	"logitrans-backend/types"
	"logitrans-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// ShipmentController handles shipment booking, movement, archival and the
// public tracking endpoint.
type ShipmentController struct {
	Lifecycle *lifecycle.Service
	Metrics   *metrics.Metrics
	Logger    *logger.AsyncLogger
}

// NewShipmentController creates a new shipment controller
func NewShipmentController(lc *lifecycle.Service, m *metrics.Metrics, asyncLogger *logger.AsyncLogger) *ShipmentController {
	return &ShipmentController{
		Lifecycle: lc,
		Metrics:   m,
		Logger:    asyncLogger,
	}
}

// Helper function to send response and log in one call
func (sc *ShipmentController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	sc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

func (sc *ShipmentController) badRequest(c *fiber.Ctx, message string) error {
	return sc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
		Data:    nil,
	})
}

func (sc *ShipmentController) domainError(c *fiber.Ctx, operation string, err error) error {
	status, msg := utils.MapDomainError(err)
	if status == fiber.StatusInternalServerError {
		logger.Error(fmt.Sprintf("Operation %s failed", operation), err)
	}
	sc.Metrics.ErrorsCount.WithLabelValues(operation).Inc()
	return sc.sendResponseWithLog(c, status, types.ApiResponse{
		Status:  status,
		Message: msg,
		Data:    nil,
	})
}

// Store books an additional leg for an existing cargo at a point slot.
func (sc *ShipmentController) Store(c *fiber.Ctx) error {
	var req types.ShipmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return sc.badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return sc.badRequest(c, err.Error())
	}

	in := lifecycle.CreateShipmentInput{
		CargoTrack:  req.CargoTrack,
		PointName:   req.PointName,
		Slot:        req.Slot,
		Status:      shipmentModel.Status(req.Status),
		EmployeeFio: req.EmployeeFio,
	}
	if in.EmployeeFio == "" {
		in.EmployeeFio = middleware.ClaimString(c, "fio")
	}
	if req.Date != nil {
		in.Date = *req.Date
	}

	created, err := sc.Lifecycle.CreateShipment(c.Context(), in)
	if err != nil {
		return sc.domainError(c, "shipment_create", err)
	}
	sc.Metrics.ShipmentsCreated.Inc()

	logger.Success(fmt.Sprintf("Shipment booked: %s at %s slot %s", created.CargoTrack, created.PointName, created.Slot))
	return sc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Shipment created",
		Data:    created,
	})
}

// Update moves a live shipment along its lifecycle. Reaching the delivered
// status archives every live leg of the track in the same transaction.
func (sc *ShipmentController) Update(c *fiber.Ctx) error {
	var req types.ShipmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return sc.badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return sc.badRequest(c, err.Error())
	}

	in := lifecycle.UpdateShipmentInput{
		CargoTrack:  req.CargoTrack,
		PointName:   req.PointName,
		NewSlot:     req.NewSlot,
		NewStatus:   shipmentModel.Status(req.NewStatus),
		EmployeeFio: req.EmployeeFio,
	}
	if in.EmployeeFio == "" {
		in.EmployeeFio = middleware.ClaimString(c, "fio")
	}
	if req.Date != nil {
		in.Date = *req.Date
	}

	updated, err := sc.Lifecycle.UpdateShipment(c.Context(), in)
	if err != nil {
		return sc.domainError(c, "shipment_update", err)
	}
	sc.Metrics.ShipmentsUpdated.Inc()
	if updated.Status.IsTerminal() {
		sc.Metrics.ShipmentsArchived.Inc()
		logger.Info(fmt.Sprintf("Cargo %s delivered and archived", updated.CargoTrack))
	}

	return sc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipment updated",
		Data:    updated,
	})
}

// Delete removes one live leg identified by track and point.
func (sc *ShipmentController) Delete(c *fiber.Ctx) error {
	track := c.Params("track")
	point := c.Params("point")
	if track == "" || point == "" {
		return sc.badRequest(c, "track and point are required")
	}

	if err := sc.Lifecycle.DeleteShipment(c.Context(), track, point); err != nil {
		return sc.domainError(c, "shipment_delete", err)
	}

	return sc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipment deleted",
		Data:    nil,
	})
}

// Archive force-moves every live leg of a track into the archive. The normal
// path is the terminal status update; this recovers delivered rows that never
// made it out of the live set.
func (sc *ShipmentController) Archive(c *fiber.Ctx) error {
	track := c.Params("track")
	if track == "" {
		return sc.badRequest(c, "track is required")
	}

	if err := sc.Lifecycle.ArchiveShipment(c.Context(), track); err != nil {
		return sc.domainError(c, "shipment_archive", err)
	}
	sc.Metrics.ShipmentsArchived.Inc()

	return sc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipments archived",
		Data:    nil,
	})
}

// ByPoint lists the live shipments sitting at a point, the warehouse screen's
// main view.
func (sc *ShipmentController) ByPoint(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return sc.badRequest(c, "point name is required")
	}

	shipments, err := sc.Lifecycle.GetShipmentsByPoint(c.Context(), name)
	if err != nil {
		return sc.domainError(c, "shipments_by_point", err)
	}

	return sc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipments fetched",
		Data:    shipments,
	})
}

// Tracking returns the chronological status history of a track. An unknown
// track answers with an empty history, never 404; the tracking screen shows
// "nothing found" on emptiness.
func (sc *ShipmentController) Tracking(c *fiber.Ctx) error {
	track := c.Params("track")
	if track == "" {
		return sc.badRequest(c, "track is required")
	}

	start := time.Now()
	events, err := sc.Lifecycle.GetCargoStatus(c.Context(), track)
	if err != nil {
		return sc.domainError(c, "tracking", err)
	}
	sc.Metrics.RequestDuration.Observe(time.Since(start).Seconds())

	return sc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Tracking history fetched",
		Data:    events,
	})
}
