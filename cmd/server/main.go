package main

import (
	"fmt"
	"log"

	_ "procura/docs"
	"procura/internal/config"
	"procura/internal/handler"
	"procura/internal/port"
	"procura/internal/repository/postgres"
	"procura/internal/router"
	"procura/internal/service"
	s3storage "procura/internal/storage/s3"
	"procura/internal/xlsxreport"
)

// @title           Procura API
// @version         1.0
// @description     Multi-company procurement back end with purchase reporting.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	companyRepo := postgres.NewCompanyRepo(db)
	userRepo := postgres.NewUserRepo(db)
	orderRepo := postgres.NewOrderRepo(db)

	// Initialize storage (only needed when report archiving is on)
	var storage port.ObjectStorage
	if cfg.S3.ArchiveEnabled {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, companyRepo, cfg.JWT)
	reportSvc := service.NewReportService(orderRepo, companyRepo, xlsxreport.NewRenderer(), storage, cfg.S3)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	dashboardH := handler.NewDashboardHandler(reportSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, dashboardH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
