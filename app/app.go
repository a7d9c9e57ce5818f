// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"accounts-api/config"
	"accounts-api/db"
	"accounts-api/handler"
	"accounts-api/logger"
	"accounts-api/repository"
	"accounts-api/router"
	"accounts-api/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---

	customerRepo := repository.NewCustomerRepository(database)
	tokenRepo := repository.NewTokenRepository(database)
	authService := service.NewAuthService(customerRepo, tokenRepo)
	customerHandler := handler.NewCustomerHandler(authService)

	accountRepo := repository.NewAccountRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)
	accountService := service.NewAccountService(accountRepo, transactionRepo)
	accountHandler := handler.NewAccountHandler(accountService)

	calendarCfg := config.AppConfig.BrasilAPI
	calendar := service.NewBrasilAPICalendar(
		calendarCfg.BaseURL,
		time.Duration(calendarCfg.TimeoutSeconds)*time.Second,
		redisClient,
		time.Duration(calendarCfg.CacheTTLMinutes)*time.Minute,
	)
	transferService := service.NewTransferService(database, accountRepo, transactionRepo, calendar)
	transferHandler := handler.NewTransferHandler(transferService)

	r := router.NewRouter(customerHandler, accountHandler, transferHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
