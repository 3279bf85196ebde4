package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bean-scene-ordering/config"
	"bean-scene-ordering/controllers"
	"bean-scene-ordering/database"
	"bean-scene-ordering/helpers"
	"bean-scene-ordering/routes"
	"bean-scene-ordering/store"
	"bean-scene-ordering/uploads"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("database connect", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(context.Background(), client); err != nil {
			slog.Error("database close", "error", err)
		}
	}()

	documentStore := store.New(client.Database(cfg.Database))
	tokens := helpers.NewTokenService(cfg.SecretKey)
	notifier := controllers.NewNotifier()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded images are immutable blobs served straight from disk.
	router.Static("/static", cfg.ImagesDir)
	router.GET("/api-docs", controllers.Docs())

	api := router.Group("/api")
	routes.AuthRoutes(api, controllers.NewAuthController(documentStore, tokens), tokens)
	routes.UserRoutes(api, controllers.NewUserController(documentStore))
	routes.CategoryRoutes(api, controllers.NewCategoryController(documentStore))
	routes.MenuItemRoutes(api, controllers.NewMenuItemController(documentStore), cfg.ImagesDir)
	routes.OrderRoutes(api, controllers.NewOrderController(documentStore, notifier), notifier)
	routes.TableRoutes(api, controllers.NewTableController(documentStore), cfg.ImagesDir)

	janitor := uploads.NewJanitor(documentStore, cfg.ImagesDir, cfg.SweepInterval, cfg.SweepMinAge)
	go janitor.Run(ctx)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
}
