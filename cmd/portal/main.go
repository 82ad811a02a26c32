package main

import (
	"context"
	"log"

	"github.com/Freeeeeet/condo_portal/internal/app"
	"github.com/Freeeeeet/condo_portal/internal/config"
	"github.com/Freeeeeet/condo_portal/internal/controller"
	"github.com/Freeeeeet/condo_portal/internal/repository"
	"github.com/Freeeeeet/condo_portal/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	// Применяем миграции до старта HTTP
	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	facilityRepo := repository.NewFacilityRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	unitRepo := repository.NewUnitRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool, invoiceRepo)
	maintenanceRepo := repository.NewMaintenanceRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)
	eventRepo := repository.NewEventRepository(pool)

	reservationService := service.NewReservationService(facilityRepo, bookingRepo, logger)
	paymentService := service.NewPaymentService(invoiceRepo, paymentRepo, unitRepo, logger)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, unitRepo, logger)
	announcementService := service.NewAnnouncementService(announcementRepo, eventRepo, logger)

	router := controller.NewRouter(reservationService, paymentService, maintenanceService, announcementService)

	logger.Sugar().Infow("Starting condo portal",
		"environment", cfg.Environment,
		"addr", cfg.HTTPAddr)

	if err := router.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("HTTP server stopped", zap.Error(err))
	}
}
