package main

import (
	"driveline/cmd/internal/config"
	"driveline/cmd/internal/domain/catalog"
	"driveline/cmd/internal/domain/sqlite"
	"driveline/cmd/internal/domain/sqlite/repository"
	"driveline/cmd/internal/routes"
	"driveline/cmd/internal/service"
	"driveline/cmd/internal/utils/clock"
	"driveline/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", err)
	}

	// Init SQLite
	db, err := sqlite.Init(cfg.DB.Path)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	slotRepo := repository.NewSlotRepository(db)
	cars := catalog.Default()

	// Getting services
	catalogService := service.NewCatalogService(cars)
	ledgerService := service.NewLedgerService(slotRepo, validate, clock.NewRealClock())

	// Getting routes
	catalogRoutes := routes.NewCatalogDefault(catalogService)
	apptRoutes := routes.NewAppointmentDefault(ledgerService)

	e := echo.New()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORS.AllowOrigins}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))

	// Catalog
	e.GET("/api/home", catalogRoutes.GetHome)
	e.GET("/api/cars", catalogRoutes.GetCars)
	e.GET("/api/cars/:id", catalogRoutes.GetCar)

	// Test drives
	e.GET("/api/schedule", apptRoutes.GetScheduleForm)
	e.GET("/api/appointments", apptRoutes.GetAppointments)
	e.POST("/api/appointments", apptRoutes.CreateAppointment)
	e.POST("/api/appointments/:id/cancel", apptRoutes.CancelAppointment)
	e.GET("/api/appointments/:id/reschedule", apptRoutes.Reschedule)

	err = e.Start(":" + cfg.Server.Port)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("bookdate", validators.IsBookDate)
	_ = validate.RegisterValidation("timeslot", validators.IsTimeSlot)
}
