package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicflow/config"
	"clinicflow/cron"
	"clinicflow/database"
	clinicinfoRepo "clinicflow/database/repository/clinicinfo"
	sessionRepo "clinicflow/database/repository/session"
	"clinicflow/handlers"
	"clinicflow/middleware"
	"clinicflow/routes"
	"clinicflow/services/agent"
	"clinicflow/services/calendar"
	"clinicflow/services/faq"
	"clinicflow/services/tasks"
	"clinicflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	infoRepo := clinicinfoRepo.NewMongoClinicInfoRepo()
	sessions := sessionRepo.NewRedisSessionRepo(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 15*time.Second)
	if err := clinicinfoRepo.SeedFromFile(seedCtx, infoRepo, config.AppConfig.ClinicInfoFile); err != nil {
		logger.Sugar().Warnf("main: failed to seed clinic info: %v", err)
	}
	cancelSeed()

	// services.
	faqService := faq.NewDefaultFAQService(infoRepo)
	calendarClient := calendar.NewHTTPCalendarClient(
		config.AppConfig.CalendarAPIURL,
		time.Duration(config.AppConfig.CalendarTimeoutSecs)*time.Second,
	)

	var reminders tasks.ReminderScheduler
	if config.AppConfig.ReminderWorkerEnabled {
		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		defer asynqClient.Close()
		reminders = &tasks.AsynqReminderScheduler{
			Client:   asynqClient,
			LeadTime: time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour,
		}
		cron.InitReminderWorker()
	}

	agentService := agent.NewDefaultAgentService(sessions, calendarClient, faqService, reminders)

	// Assemble the handler bundle and register routes.
	handlerBundle := &handlers.HandlerBundle{
		Chat:     handlers.NewChatHandler(agentService),
		Calendar: handlers.NewCalendarHandler(config.AppConfig.DoctorScheduleFile),
	}
	routes.RegisterRoutes(router, handlerBundle)

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
