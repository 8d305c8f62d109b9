package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arenabook/config"
	"arenabook/cron"
	"arenabook/database"
	arenaRepoPkg "arenabook/database/repository/arena"
	orderRepoPkg "arenabook/database/repository/order"
	"arenabook/handlers"
	"arenabook/middleware"
	"arenabook/routes"
	arenaSvc "arenabook/services/arena"
	"arenabook/services/booking"
	"arenabook/services/notification"
	"arenabook/services/tasks"
	"arenabook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	arenas := arenaRepoPkg.NewMongoArenaRepo()
	orders := orderRepoPkg.NewMongoOrderRepo()

	if err := arenaRepoPkg.EnsureArenaIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure arena indexes: %v", err)
	}
	if err := orderRepoPkg.EnsureOrderIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure order indexes: %v", err)
	}

	// Background mail delivery.
	enqueuer := tasks.NewAsynqEnqueuer()
	defer enqueuer.Close()
	mailWorker := cron.InitMailWorker(notification.NewResendMailer())
	defer mailWorker.Shutdown()

	// services.
	bookingService := &booking.DefaultBookingService{
		Arenas:   arenas,
		Orders:   orders,
		Gateway:  booking.NewStripeCheckoutGateway(logger),
		Verifier: &booking.StripeEventVerifier{Secret: config.AppConfig.StripeWebhookSecret},
		Cache:    utils.GetCacheClient(),
		Mail:     enqueuer,
		Now:      time.Now,
	}
	arenaService := &arenaSvc.DefaultArenaService{
		Repo: arenas,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Webhook: handlers.NewWebhookHandler(bookingService, logger),
		Arena:   handlers.NewArenaHandler(arenaService),
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
