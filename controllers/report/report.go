package report

import (
	"strconv"
	"time"

	"logitrans-backend/logger"
	"logitrans-backend/types"
	"logitrans-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportController serves the manager's analytics screens: warehouse load and
// monthly income.
type ReportController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewReportController creates a new report controller
func NewReportController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ReportController {
	return &ReportController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Helper function to send response and log in one call
func (rc *ReportController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	rc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

func (rc *ReportController) dbError(c *fiber.Ctx, message string, err error) error {
	logger.Error(message, err)
	return rc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Database error",
		Data:    nil,
	})
}

// WarehouseLoad returns the number of live shipments per point. Points with
// no live shipments are reported with zero so the screen shows every point.
func (rc *ReportController) WarehouseLoad(c *fiber.Ctx) error {
	var rows []types.WarehouseLoad
	query := `
		SELECT p.name AS point_name, COUNT(s.id) AS occupied_slots
		FROM points p
		LEFT JOIN shipments s ON s.point_name = p.name
		GROUP BY p.name
		ORDER BY p.name`
	if err := rc.DB.Raw(query).Scan(&rows).Error; err != nil {
		return rc.dbError(c, "Failed to compute warehouse load", err)
	}
	if rows == nil {
		rows = []types.WarehouseLoad{}
	}

	return rc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Warehouse load fetched",
		Data:    rows,
	})
}

// incomeRow is the raw scan target for the income query.
type incomeRow struct {
	Period        time.Time
	Income        decimal.Decimal
	ShipmentCount int
	AvgPrice      decimal.Decimal
	CargoType     string
}

// Income aggregates completed cargo per calendar month and cargo type:
// total income, shipment count and average price. A cargo counts once per
// track, dated by its latest leg; archived rows and delivered rows still in
// the live set both qualify. The optional months query parameter limits the
// window, counted back from the current month.
func (rc *ReportController) Income(c *fiber.Ctx) error {
	months, err := strconv.Atoi(c.Query("months", "12"))
	if err != nil || months < 1 {
		return rc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "months must be a positive integer",
			Data:    nil,
		})
	}
	since := now.With(time.Now()).BeginningOfMonth().AddDate(0, -(months - 1), 0)

	query := `
		SELECT date_trunc('month', s.date) AS period,
		       c.type AS cargo_type,
		       SUM(c.price) AS income,
		       COUNT(*) AS shipment_count,
		       AVG(c.price) AS avg_price
		FROM (
			SELECT DISTINCT ON (cargo_track) cargo_track, date FROM (
				SELECT cargo_track, date FROM shipment_archives
				UNION ALL
				SELECT cargo_track, date FROM shipments WHERE status = 'delivered'
			) legs
			ORDER BY cargo_track, date DESC
		) s
		JOIN cargoes c ON c.track = s.cargo_track
		WHERE s.date >= ?
		GROUP BY period, c.type
		ORDER BY period, c.type`

	var rows []incomeRow
	if err := rc.DB.Raw(query, since).Scan(&rows).Error; err != nil {
		return rc.dbError(c, "Failed to compute income report", err)
	}

	reports := make([]types.IncomeReport, 0, len(rows))
	for _, r := range rows {
		reports = append(reports, types.IncomeReport{
			Period:        r.Period,
			Income:        r.Income.StringFixed(2),
			ShipmentCount: r.ShipmentCount,
			AvgPrice:      r.AvgPrice.Round(2).StringFixed(2),
			CargoType:     r.CargoType,
		})
	}

	return rc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Income report fetched",
		Data:    reports,
	})
}
