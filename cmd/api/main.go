package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/users-api/internal/adapter/handler"
	"github.com/marcos-nsantos/users-api/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/users-api/internal/infrastructure/config"
	"github.com/marcos-nsantos/users-api/internal/infrastructure/database"
	"github.com/marcos-nsantos/users-api/internal/infrastructure/observability"
	"github.com/marcos-nsantos/users-api/internal/infrastructure/server"
	"github.com/marcos-nsantos/users-api/internal/usecase/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	applied, err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath)
	if err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("migrations complete", zap.Strings("applied", applied))

	userRepo := postgres.NewUserRepo(pool)
	userSvc := user.NewService(userRepo)
	userHandler := handler.NewUserHandler(userSvc)

	router := server.NewRouter(server.RouterConfig{
		UserHandler: userHandler,
		Logger:      logger,
		Environment: cfg.Server.Environment,
		CORSOrigins: cfg.CORS.Origins(),
	})

	srv := server.NewServer(server.ServerConfig{
		Addr:         cfg.Server.Addr(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.Engine(),
		Logger:       logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
