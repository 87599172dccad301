package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Application Layer
	appService "seatsync/internal/application/service"

	// Infrastructure Layer
	"seatsync/internal/infrastructure/archive"
	"seatsync/internal/infrastructure/companion"
	"seatsync/internal/infrastructure/database/sqlite"
	lineClient "seatsync/internal/infrastructure/line"
	"seatsync/internal/infrastructure/scheduler"
	"seatsync/internal/infrastructure/seatapi"

	// Interfaces Layer
	"seatsync/internal/interfaces/api/handler"
	"seatsync/internal/interfaces/api/router"

	// Packages
	"seatsync/internal/pkg/clock"
	"seatsync/internal/pkg/config"
	appLogger "seatsync/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
	"gorm.io/gorm"
)

func gracefulShutdown(apiServer *http.Server, cronScheduler *scheduler.Scheduler, db *gorm.DB, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first
	log.Println("Stopping scheduler...")
	cronScheduler.Stop()
	log.Println("Scheduler stopped.")

	// Close database connection
	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(db); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	// Shutdown HTTP server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Initialization ---
	appLog := appLogger.New()
	appLog.Info("Logger initialized.")

	cfg, err := config.New()
	if err != nil {
		appLog.Error("Failed to load configuration", err)
		os.Exit(1)
	}

	// --- Infrastructure ---
	db, err := sqlite.NewDB(cfg.DBURL)
	if err != nil {
		appLog.Error("Failed to initialize database", err)
		os.Exit(1)
	}
	accountRepo := sqlite.NewAccountRepository(db)
	prefRepo := sqlite.NewPreferenceRepository(db)
	archiveRepo, err := archive.NewFileRepository(cfg.DataDir, appLog)
	if err != nil {
		appLog.Error("Failed to initialize archive store", err)
		os.Exit(1)
	}
	appLog.Info("Database and repositories initialized.")

	seatClient, err := seatapi.NewClient(cfg.Seat.BaseURL, appLog)
	if err != nil {
		appLog.Error("Failed to create seat service client", err)
		os.Exit(1)
	}

	cronScheduler := scheduler.NewScheduler(appLog)
	sysClock := clock.System()

	// --- Alert delivery ---
	// Push fired alerts over LINE when credentials are configured, otherwise
	// log them.
	var deliverer scheduler.Deliverer = &scheduler.LogDeliverer{Log: appLog}
	if cfg.Line.ChannelSecret != "" && cfg.Line.ChannelToken != "" {
		line, err := lineClient.NewClient(cfg.Line.ChannelSecret, cfg.Line.ChannelToken, cfg.Line.To, appLog)
		if err != nil {
			appLog.Warn(fmt.Sprintf("LINE client unavailable, falling back to log delivery: %v", err))
		} else {
			deliverer = line
		}
	}
	sink := scheduler.NewAlertSink(cronScheduler, deliverer, appLog)

	// --- Application Services ---
	storeSvc := appService.NewStoreService(archiveRepo, appLog)
	notificationSvc := appService.NewNotificationService(sink, sysClock, cfg.Seat.OpenHour, cfg.Seat.OpenMinute, appLog)
	syncSvc := appService.NewSyncService(seatClient, storeSvc, sysClock, appLog)
	// EventService installs itself as the store change handler.
	eventSvc := appService.NewEventService(seatClient, storeSvc, notificationSvc, accountRepo, prefRepo, companion.NewLogTransfer(appLog), appLog)
	appLog.Info("Application services initialized.")

	// --- Rehydrate state ---
	// Restore the active account's session and archive so pending alerts
	// survive a restart.
	startupCtx := context.Background()
	if account, err := accountRepo.FindActive(startupCtx); err != nil {
		appLog.Error("Failed to look up active account on startup", err)
	} else if account != nil {
		seatClient.SetToken(account.Token)
		storeSvc.SwitchAccount(startupCtx, account)
		appLog.Info(fmt.Sprintf("Restored account %s and recomputed alerts.", account.Username))
	} else {
		appLog.Info("No active account to restore.")
	}

	// --- API Handlers ---
	seatHandler := handler.NewSeatHandler(syncSvc, eventSvc, storeSvc, sysClock, appLog)
	appLog.Info("API handlers initialized.")

	// --- Router ---
	routerCfg := &router.Config{
		SeatHandler: seatHandler,
		Logger:      appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, cronScheduler, db, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
