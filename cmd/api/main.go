package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"barberbook/internal/config"
	"barberbook/internal/database"
	"barberbook/internal/middleware"
	"barberbook/internal/modules/availability"
	"barberbook/internal/modules/booking"
	"barberbook/internal/modules/bot"
	"barberbook/internal/modules/catalog"
	"barberbook/internal/pkg/logger"
	"barberbook/internal/pkg/redisconn"
	"barberbook/internal/pkg/waclient"
	"barberbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.New(cfg.App.Env)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	rdb, err := redisconn.Open(context.Background(), redisconn.Config{Addr: cfg.Redis.Addr})
	if err != nil {
		log.Fatal(err)
	}
	defer rdb.Close()

	shopRepo := repository.NewShopRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	barberRepo := repository.NewBarberRepository(db)
	hoursRepo := repository.NewWorkingHoursRepository(db)
	blockedRepo := repository.NewBlockedTimeRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	sessions := repository.NewSessionStore(rdb, cfg.SessionTTL)

	messenger := waclient.New(cfg.WhatsApp.BaseURL)

	availabilityService := availability.NewService(hoursRepo, blockedRepo, appointmentRepo)
	bookingService := booking.NewService(appointmentRepo, serviceRepo, customerRepo)

	botService := bot.NewService(
		shopRepo,
		serviceRepo,
		barberRepo,
		customerRepo,
		sessions,
		availabilityService,
		bookingService,
		messenger,
		logg,
	)
	botHandler := bot.NewHandler(botService)

	catalogService := catalog.NewService(
		serviceRepo,
		barberRepo,
		hoursRepo,
		blockedRepo,
		appointmentRepo,
	)
	catalogHandler := catalog.NewHandler(catalogService)

	if cfg.App.Env != "local" && cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(logg))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// inbound messages from the WhatsApp provider
		botHandler.RegisterRoutes(v1)

		// owner dashboard, tenant-scoped via X-Shop-ID
		admin := v1.Group("/admin")
		admin.Use(middleware.ShopScope())
		{
			catalogHandler.RegisterRoutes(admin)
		}
	}

	logg.Info("starting api", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := r.Run(fmt.Sprintf(":%d", cfg.App.Port)); err != nil {
		log.Fatal(err)
	}
}
