package routes

import (
	"logitrans-backend/constants"
	authController "logitrans-backend/controllers/auth"
	cargoController "logitrans-backend/controllers/cargo"
	directoryController "logitrans-backend/controllers/directory"
	reportController "logitrans-backend/controllers/report"
	shipmentController "logitrans-backend/controllers/shipment"
	"logitrans-backend/logger"
	"logitrans-backend/metrics"
	"logitrans-backend/middleware"
	"logitrans-backend/services/lifecycle"
	"logitrans-backend/services/pricing"
	"logitrans-backend/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, pricingService *pricing.Service, m *metrics.Metrics) {
	asyncLogger := logger.NewAsyncLogger(db)
	lifecycleService := lifecycle.NewService(store.NewPostgres(db), pricingService)

	auth := authController.NewAuthController(db, asyncLogger)
	directory := directoryController.NewDirectoryController(db, asyncLogger)
	cargo := cargoController.NewCargoController(lifecycleService, pricingService, m, asyncLogger)
	shipment := shipmentController.NewShipmentController(lifecycleService, m, asyncLogger)
	report := reportController.NewReportController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "logitrans-backend", "status": "ok"})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/login", auth.Login)
	api.Post("/client/login", auth.ClientLogin)

	authGroup := api.Group("/auth").Use(middleware.RequireAnyPermission())
	authGroup.Post("/logout", auth.LogOut)

	/*=============================================================================
	| Tracking (any valid token: staff or client)
	===============================================================================*/
	api.Get("/tracking/:track", middleware.RequireAnyPermission(), shipment.Tracking)

	/*=============================================================================
	| Directory Routes
	===============================================================================*/
	clients := api.Group("/clients")
	clients.Post("/", middleware.RequirePermissions(
		constants.PermAdministratorFull, constants.PermDirectorFull, constants.PermOperatorFull,
	), directory.StoreClient)
	clients.Get("/", middleware.RequirePermissions(
		constants.PermAdministratorFull, constants.PermDirectorFull,
	), directory.ListClients)
	clients.Put("/:phone", middleware.RequirePermissions(
		constants.PermAdministratorFull, constants.PermDirectorFull,
	), directory.UpdateClient)
	clients.Delete("/:phone", middleware.RequirePermissions(
		constants.PermAdministratorFull, constants.PermDirectorFull,
	), directory.DeleteClient)

	points := api.Group("/points")
	points.Get("/", middleware.RequirePermissions(constants.StaffPermissions...), directory.ListPoints)
	points.Post("/", middleware.RequirePermissions(
		constants.PermAdministratorFull, constants.PermDirectorFull,
	), directory.StorePoint)
	points.Put("/:name", middleware.RequirePermissions(
		constants.PermAdministratorFull, constants.PermDirectorFull,
	), directory.UpdatePoint)
	points.Delete("/:name", middleware.RequirePermissions(
		constants.PermAdministratorFull, constants.PermDirectorFull,
	), directory.DeletePoint)

	employees := api.Group("/employees").Use(middleware.RequirePermissions(
		constants.PermAdministratorFull, constants.PermDirectorFull,
	))
	employees.Get("/", directory.ListEmployees)
	employees.Post("/", directory.StoreEmployee)
	employees.Put("/:fio", directory.UpdateEmployee)
	employees.Delete("/:fio", directory.DeleteEmployee)

	/*=============================================================================
	| Cargo Routes
	===============================================================================*/
	cargoGroup := api.Group("/cargo")
	cargoGroup.Post("/price", middleware.RequirePermissions(constants.StaffPermissions...), cargo.Quote)
	cargoGroup.Post("/", middleware.RequirePermissions(
		constants.PermOperatorFull, constants.PermAdministratorFull, constants.PermDirectorFull,
	), cargo.Store)
	cargoGroup.Get("/:track", middleware.RequirePermissions(constants.StaffPermissions...), cargo.Show)
	cargoGroup.Put("/:track", middleware.RequirePermissions(
		constants.PermAdministratorFull, constants.PermDirectorFull,
	), cargo.Update)
	cargoGroup.Delete("/:track", middleware.RequirePermissions(
		constants.PermAdministratorFull, constants.PermDirectorFull,
	), cargo.Delete)

	/*=============================================================================
	| Shipment Routes
	===============================================================================*/
	shipments := api.Group("/shipments")
	shipments.Post("/", middleware.RequirePermissions(
		constants.PermOperatorFull, constants.PermWarehouseFull, constants.PermAdministratorFull, constants.PermDirectorFull,
	), shipment.Store)
	shipments.Put("/", middleware.RequirePermissions(
		constants.PermWarehouseFull, constants.PermOperatorFull, constants.PermAdministratorFull, constants.PermDirectorFull,
	), shipment.Update)
	shipments.Post("/:track/archive", middleware.RequirePermissions(
		constants.PermWarehouseFull, constants.PermAdministratorFull, constants.PermDirectorFull,
	), shipment.Archive)
	shipments.Delete("/:track/:point", middleware.RequirePermissions(
		constants.PermAdministratorFull, constants.PermDirectorFull,
	), shipment.Delete)
	shipments.Get("/point/:name", middleware.RequirePermissions(constants.StaffPermissions...), shipment.ByPoint)

	/*=============================================================================
	| Report Routes
	===============================================================================*/
	reports := api.Group("/reports").Use(middleware.RequirePermissions(constants.ReportingPermissions...))
	reports.Get("/warehouse-load", report.WarehouseLoad)
	reports.Get("/income", report.Income)
}
