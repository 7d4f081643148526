package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shiptrack/cmd"
	httpadapter "shiptrack/internal/adapters/in/http"
	"shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/jobs"
	"shiptrack/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load(".env")

	config, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.New(config.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if config.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be configured")
	}

	db, err := connectDatabase(config)
	if err != nil {
		log.Fatal("database setup failed", zap.Error(err))
	}

	ctx := context.Background()
	if err = postgres.SeedSystemStatuses(ctx, db); err != nil {
		log.Fatal("seeding system statuses failed", zap.Error(err))
	}

	root := cmd.NewCompositionRoot(config, db)

	jobManager := jobs.NewJobManager(
		root.CreateArchiveStaleOrdersCommandHandler(),
		config.ArchivalSchedule,
		config.ArchiveOlderThan,
		log,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatal("starting background jobs failed", zap.Error(err))
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(
		log,
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreateCreateStatusCommandHandler(),
		root.CreateUpdateStatusCommandHandler(),
		root.CreateDeleteStatusCommandHandler(),
		root.CreateReorderStatusesCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateListOrdersQueryHandler(),
		root.CreateGetOrderHistoryQueryHandler(),
		root.CreateTrackOrderQueryHandler(),
		root.CreateListStatusesQueryHandler(),
	)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(gommonlog.OFF)
	e.Use(middleware.Recover())
	server.RegisterRoutes(e, []byte(config.JWTSecret))

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		log.Info("http server starting", zap.String("addr", addr))
		if err := e.Start(addr); err != nil {
			log.Info("http server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
	log.Info("shutdown complete")
}

func connectDatabase(config cmd.Config) (db *gorm.DB, err error) {
	params := postgres.ConnectionParams{
		Host:     config.DBHost,
		Port:     config.DBPort,
		User:     config.DBUser,
		Password: config.DBPassword,
		DBName:   config.DBName,
		SSLMode:  config.DBSslMode,
	}

	if err = postgres.CreateDatabaseIfNotExists(params); err != nil {
		return nil, fmt.Errorf("create database: %w", err)
	}

	if db, err = postgres.Open(params); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}
