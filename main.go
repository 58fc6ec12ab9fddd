package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jojocolaresbeauty/config"
	"jojocolaresbeauty/cron"
	"jojocolaresbeauty/database"
	appointmentRepo "jojocolaresbeauty/database/repository/appointment"
	catalogRepo "jojocolaresbeauty/database/repository/catalog"
	contentRepo "jojocolaresbeauty/database/repository/content"
	settingsRepo "jojocolaresbeauty/database/repository/settings"
	"jojocolaresbeauty/handlers"
	"jojocolaresbeauty/middleware"
	"jojocolaresbeauty/routes"
	"jojocolaresbeauty/services/admin"
	"jojocolaresbeauty/services/booking"
	"jojocolaresbeauty/services/notification"
	"jojocolaresbeauty/services/storage"
	"jojocolaresbeauty/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	storageService, err := storage.NewCloudinaryService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}
	notificationService, err := notification.NewWhatsAppService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize whatsapp gateway: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	serviceRepo := catalogRepo.NewMongoServiceRepo()
	cntRepo := contentRepo.NewMongoContentRepo()
	setRepo := settingsRepo.NewMongoSettingsRepo()

	// Task queue client for best-effort notification dispatch.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	bookingService := &booking.DefaultBookingService{
		ApptRepo:     apptRepo,
		ServiceRepo:  serviceRepo,
		SettingsRepo: setRepo,
		Queue:        queueClient,
		AdminURL:     config.AppConfig.AdminURL,
	}
	adminService := &admin.DefaultAdminService{
		ApptRepo:     apptRepo,
		SettingsRepo: setRepo,
		Queue:        queueClient,
	}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService)
	adminHandler := handlers.NewAdminHandler(adminService)
	catalogHandler := handlers.NewCatalogHandler(serviceRepo)
	contentHandler := handlers.NewContentHandler(cntRepo)
	storageHandler := handlers.NewStorageHandler(storageService)

	handlerBundle := &handlers.HandlerBundle{
		GetSlots:          bookingHandler.GetSlotsHandler,
		CreateAppointment: bookingHandler.CreateAppointmentHandler,
		ListServices:      catalogHandler.ListServicesHandler,
		ListPortfolio:     contentHandler.ListPortfolioHandler,
		ListTestimonials:  contentHandler.ListTestimonialsHandler,
		GetLandingPage:    contentHandler.GetLandingPageHandler,

		AdminLogin: handlers.AdminLoginHandler,

		AdminHandler:   adminHandler,
		CatalogHandler: catalogHandler,
		ContentHandler: contentHandler,
		StorageHandler: storageHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background notification worker and dependency health monitor.
	cron.InitNotifyWorker(notificationService, apptRepo)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
