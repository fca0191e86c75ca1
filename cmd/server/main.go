package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emotehub/internal/emotes/auth"
	"emotehub/internal/emotes/cache"
	"emotehub/internal/emotes/config"
	"emotehub/internal/emotes/handler"
	"emotehub/internal/emotes/model"
	"emotehub/internal/emotes/repository"
	"emotehub/internal/emotes/router"
	"emotehub/internal/emotes/service"
	"emotehub/internal/emotes/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// 0. Init Logger
	util.InitLogger()
	logger := util.GetLogger()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	db := client.Database(cfg.DBName)
	repo := repository.NewMongoRepository(db, repository.Collections{
		Emotes:  cfg.EmotesCollection,
		Users:   cfg.UsersCollection,
		Roles:   cfg.RolesCollection,
		Bans:    cfg.BansCollection,
		Reports: cfg.ReportsCollection,
		Audit:   cfg.AuditCollection,
	})

	if err := repo.EnsureIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure indexes", "error", err)
	}
	if err := repo.EnsureAuditIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure audit indexes", "error", err)
	}

	// 3. Optional Redis role cache
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis unreachable, role cache disabled", "error", err)
			redisClient = nil
		}
	}
	roleCache := cache.NewRoleCache(repo, redisClient, cache.DefaultRoleTTL)

	// 4. Access tokens
	tokens, err := auth.NewManager(auth.Config{
		Secret:    []byte(cfg.JWTSecret),
		Issuer:    cfg.JWTIssuer,
		AccessTTL: cfg.JWTAccessTTL,
	})
	if err != nil {
		logger.Error("Failed to init token manager", "error", err)
		os.Exit(1)
	}

	// 5. Service & handlers
	defaults := model.DefaultPermissions
	if cfg.LegacyDefaultPermissions {
		defaults = model.LegacyDefaultPermissions
	}
	svc := service.NewService(repo, repo, roleCache, defaults)
	h := handler.NewHandler(svc)
	authMW := handler.NewAuthMiddleware(tokens, repo)

	// 6. Init Echo & Routes
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h, authMW)

	// 7. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close redis", "error", err)
		}
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect DB", "error", err)
	}

	logger.Info("Server exited properly")
}
