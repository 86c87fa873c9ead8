// Package main runs the facility scheduling HTTP server with WebSocket and graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ScriFi/Athletitrack/config"
	"github.com/ScriFi/Athletitrack/internal/auth"
	"github.com/ScriFi/Athletitrack/internal/buildings"
	"github.com/ScriFi/Athletitrack/internal/calendar"
	"github.com/ScriFi/Athletitrack/internal/events"
	"github.com/ScriFi/Athletitrack/internal/middleware"
	"github.com/ScriFi/Athletitrack/internal/organizations"
	"github.com/ScriFi/Athletitrack/internal/realtime"
	"github.com/ScriFi/Athletitrack/internal/store"
	"github.com/ScriFi/Athletitrack/internal/suggest"
	"github.com/ScriFi/Athletitrack/internal/teams"
	"github.com/ScriFi/Athletitrack/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	st := store.New()
	if cfg.Seed {
		if err := store.Seed(st); err != nil {
			logger.Fatal("seed", zap.Error(err))
		}
		logger.Info("seed data loaded")
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	hub := realtime.NewHub(logger)
	st.SetNotifier(hub.BroadcastScheduleChange)

	suggestClient := suggest.NewClient(cfg.Suggest.Endpoint, logger)

	authHandler := auth.NewHandler(st, jwtService, logger)
	orgHandler := organizations.NewHandler(st)
	calendarHandler := calendar.NewHandler(st)
	buildingHandler := buildings.NewHandler(st, logger)
	teamHandler := teams.NewHandler(st, logger)
	eventHandler := events.NewHandler(st, logger)
	suggestHandler := suggest.NewHandler(suggestClient, st, logger)

	wsValidate := func(token string) (uuid.UUID, error) {
		claims, err := jwtService.Validate(token)
		if err != nil {
			return uuid.Nil, err
		}
		return claims.UserID, nil
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// Auth (public)
	router.POST("/auth/login", authHandler.Login)

	// Protected API (JWT required)
	api := router.Group("")
	api.Use(middleware.JWT(jwtService))
	{
		// Users (admin only; for assigning coaches to teams)
		api.GET("/users", middleware.RequireRole("admin", "superadmin"), authHandler.List)

		// Organizations
		api.GET("/organizations", orgHandler.ListMine)

		// Everything scoped to one organization requires membership.
		org := api.Group("/organizations/:id")
		org.Use(middleware.OrgAccess(st))
		{
			org.GET("", orgHandler.Get)

			// Calendar views and drag-and-drop scheduling
			org.GET("/calendar", calendarHandler.Get)
			org.POST("/calendar/drop", calendarHandler.Drop)

			// Events
			org.GET("/events", eventHandler.List)
			org.POST("/events", eventHandler.Create)
			org.PUT("/events/:eventId", eventHandler.Save)
			org.DELETE("/events/:eventId", eventHandler.Delete)
			org.POST("/events/import", middleware.RequireRole("admin", "superadmin"), eventHandler.Import)

			// Facilities (admin mutations)
			org.GET("/buildings", buildingHandler.List)
			org.POST("/buildings", middleware.RequireRole("admin", "superadmin"), buildingHandler.Create)
			org.PUT("/buildings/:bid", middleware.RequireRole("admin", "superadmin"), buildingHandler.Save)
			org.POST("/buildings/:bid/sub-sections", middleware.RequireRole("admin", "superadmin"), buildingHandler.AddSubSection)
			org.DELETE("/buildings/:bid", middleware.RequireRole("admin", "superadmin"), buildingHandler.Delete)

			// Teams (admin mutations)
			org.GET("/teams", teamHandler.List)
			org.POST("/teams", middleware.RequireRole("admin", "superadmin"), teamHandler.Create)
			org.PUT("/teams/:tid", middleware.RequireRole("admin", "superadmin"), teamHandler.Save)
			org.DELETE("/teams/:tid", middleware.RequireRole("admin", "superadmin"), teamHandler.Delete)

			// Description suggestions
			org.POST("/suggest", suggestHandler.Suggest)
		}
	}

	// WebSocket change feed (token in query; no Authorization header required)
	router.GET("/ws", realtime.ServeWs(hub, logger, wsValidate))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
