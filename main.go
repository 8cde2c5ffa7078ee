package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shootdesk/backend"
	"shootdesk/cache"
	"shootdesk/config"
	"shootdesk/handlers"
	"shootdesk/middleware"
	"shootdesk/routes"
	"shootdesk/services/accounts"
	"shootdesk/services/availability"
	"shootdesk/services/geo"
	"shootdesk/services/issues"
	"shootdesk/services/notification"
	"shootdesk/services/shoots"
	"shootdesk/services/weather"
	"shootdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	probes := []utils.HealthProbe{}

	// Cache store: redis when configured, otherwise in-process.
	var store cache.Store = cache.NewMemoryStore()
	if config.AppConfig.CacheBackend == "redis" {
		if err := utils.InitCache(); err != nil {
			logger.Warn("main: redis unavailable, falling back to in-memory cache", zap.Error(err))
		} else {
			client := utils.GetCacheClient()
			store = cache.NewRedisStore(client, "shootdesk:")
			probes = append(probes, utils.HealthProbe{
				Name:  "redis",
				Check: func(ctx context.Context) error { return client.Ping(ctx).Err() },
			})
		}
	}

	api := backend.NewClient(config.AppConfig.BackendBaseURL, config.BackendTimeout(), logger.Named("backend"))
	probes = append(probes, utils.HealthProbe{Name: "backend", Check: api.Ping})

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, time.Minute, probes)

	// services.
	shootService := &shoots.DefaultShootService{Backend: api}
	availabilityService := &availability.DefaultAvailabilityService{Backend: api}
	accountService := &accounts.DefaultAccountService{Backend: api}
	issueService := &issues.DefaultIssueService{Backend: api}
	notificationService, err := notification.NewDefaultNotificationService(api)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	weatherService := weather.NewOpenMeteoService(config.AppConfig.WeatherBaseURL)
	locator := geo.NewDefaultLocator(
		config.AppConfig.GeoPrimaryURL,
		config.AppConfig.GeoFallbackURL,
		store,
		time.Duration(config.AppConfig.GeoCacheTTLMinutes)*time.Minute,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Cache:         store,
		Locator:       locator,
		Shoots:        handlers.NewShootHandler(shootService, weatherService),
		Availability:  handlers.NewAvailabilityHandler(availabilityService),
		Accounts:      handlers.NewAccountHandler(accountService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Issues:        handlers.NewIssueHandler(issueService),
		Public:        handlers.NewPublicHandler(api),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

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
	stopMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
