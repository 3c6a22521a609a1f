package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serveease/config"
	"serveease/handlers"
	"serveease/middleware"
	"serveease/routes"
	"serveease/services/assistant"
	"serveease/services/booking"
	"serveease/services/catalog"
	"serveease/services/favorites"
	"serveease/services/prefs"
	"serveease/services/user"
	"serveease/storage"
	"serveease/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store := storage.NewRedisKV()
	utils.StartHealthMonitor(store.Client())

	// Create the Gin router.
	router := newRouter()

	// Repositories.
	catalogRepo := catalog.NewDefaultRepository(
		config.AppConfig.ServicesURL,
		config.AppConfig.FaqsURL,
	)

	// Services.
	bookingService := booking.NewDefaultTransactionService(store, nil)
	favoritesService := favorites.NewService(store)
	userService := user.NewService(store)
	prefsService := prefs.NewService(store)

	responders := []assistant.Responder{}
	if config.AppConfig.GeminiAPIKey != "" {
		remote, err := assistant.NewRemoteResponder(
			config.AppConfig.GeminiAPIKey,
			config.AppConfig.GeminiModel,
		)
		if err != nil {
			logger.Sugar().Warnf("main: remote responder unavailable: %v", err)
		} else {
			responders = append(responders, remote)
		}
	}
	responders = append(responders, assistant.NewLocalRuleResponder())
	resolver := assistant.NewResolver(responders...)

	// Load the FAQ reference set once at startup. A failure degrades the
	// assistant to fallback answers; it is not fatal.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		faqs, err := catalogRepo.Faqs(ctx)
		if err != nil {
			logger.Sugar().Warnf("main: FAQ load failed, assistant runs without reference set: %v", err)
			return
		}
		resolver.SetFaqs(faqs)
	}()

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Catalog:   handlers.NewCatalogHandler(catalogRepo),
		Booking:   handlers.NewBookingHandler(bookingService),
		Assistant: handlers.NewAssistantHandler(resolver),
		Favorites: handlers.NewFavoritesHandler(favoritesService),
		Auth:      handlers.NewAuthHandler(userService),
		Prefs:     handlers.NewPrefsHandler(prefsService),
	}

	// Register routes with the assembled handler bundle.
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

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	return router
}
