// File: waybook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waybook/config"
	"waybook/cron"
	"waybook/handlers"
	"waybook/routes"
	"waybook/services/calendar"
	"waybook/services/dialogue"
	"waybook/services/notification"
	"waybook/services/session"
	"waybook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	// Session store on Redis.
	sessionStore := session.NewRedisStore(
		utils.GetSessionCacheClient(),
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
	)

	// Calendar gateway.
	gateway, err := calendar.NewGoogleGateway(
		context.Background(),
		[]byte(cfg.GoogleCredentials),
		cfg.CalendarID,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar gateway: %v", err)
	}

	// Outbound messaging.
	sink := notification.NewWhatsAppSink(cfg.WhatsAppToken, cfg.PhoneNumberID, cfg.GraphAPIBase)

	// Reminder queue.
	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	})
	defer reminderClient.Close()
	cron.InitReminderWorker(sink)

	engine := &dialogue.DefaultEngine{
		Sessions:  sessionStore,
		Calendar:  gateway,
		Notifier:  sink,
		Reminders: reminderClient,
		Operator:  cfg.OperatorWAID,
		Now:       time.Now,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	webhookHandler := handlers.NewWebhookHandler(engine, cfg.VerifyToken, logger)
	routes.RegisterRoutes(router, webhookHandler)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "3000"
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
