package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/tduyile04/document-management-api/internal/auth"
	"github.com/tduyile04/document-management-api/internal/config"
	"github.com/tduyile04/document-management-api/internal/database"
	"github.com/tduyile04/document-management-api/internal/handlers"
	"github.com/tduyile04/document-management-api/internal/logging"
	"github.com/tduyile04/document-management-api/internal/service"
	"github.com/tduyile04/document-management-api/internal/store"
)

func main() {
	logger := logging.New(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	db := database.NewDatabaseManager()
	if err := db.Connect(cfg.DatabaseURL); err != nil {
		logger.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing database")
		}
	}()

	tokens := auth.NewTokens([]byte(cfg.JWTSecret), cfg.TokenTTL)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	userStore := store.NewUserStore(db.DB)
	docStore := store.NewDocumentStore(db.DB)

	userHandler := handlers.NewUserHandler(service.NewUserService(userStore, tokens, hasher))
	docHandler := handlers.NewDocumentHandler(service.NewDocumentService(docStore, userStore))

	var limiter *auth.LoginLimiter
	if cfg.RedisAddr != "" {
		client := auth.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		limiter = auth.NewLoginLimiter(client, cfg.LoginRateLimit, cfg.LoginRateWindow, logger)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(logger))
	r.Use(auth.CORSMiddleware(cfg.AllowedOrigins, cfg.AllowAllOrigins))

	handlers.Register(r, userHandler, docHandler, auth.Middleware(tokens), limiter.Middleware())

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("error starting server")
	}
}
