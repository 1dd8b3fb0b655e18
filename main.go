package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/jalanjalan/jalanjalan-backend/config"
	"github.com/jalanjalan/jalanjalan-backend/db"
	"github.com/jalanjalan/jalanjalan-backend/handlers"
	"github.com/jalanjalan/jalanjalan-backend/internal/planner"
	"github.com/jalanjalan/jalanjalan-backend/logger"
	"github.com/jalanjalan/jalanjalan-backend/router"
	"github.com/jalanjalan/jalanjalan-backend/services"
	pgstore "github.com/jalanjalan/jalanjalan-backend/store/postgres"
	redisstore "github.com/jalanjalan/jalanjalan-backend/store/redis"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := db.RunMigrations(cfg.Database.MigrateURL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.ConnString())
	if err != nil {
		log.Fatalf("Failed to parse database config: %v", err)
	}
	if cfg.Database.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		_ = redisClient.Close()
	}()

	// Stores
	poiStore := pgstore.NewPgPOIStore(pool)
	billStore := pgstore.NewPgBillStore(pool)
	tripStore := redisstore.NewTripStore(redisClient)
	poiCache := redisstore.NewPOICache(redisClient, time.Duration(cfg.Redis.PoolCacheTTLMin)*time.Minute)

	// Planning engine
	builder := planner.NewBuilder(cfg.Planner.AnchorTable())
	legs := make(map[types.TransportMode]planner.TransportLeg)
	for mode, leg := range cfg.TransportLegTable() {
		legs[mode] = planner.TransportLeg{Cost: leg.Cost, DurationMinutes: leg.DurationMinutes}
	}
	assembler := planner.NewAssembler(legs)

	// Services
	suggestionService := services.NewSuggestionService(poiStore, poiCache, builder)
	scheduleService := services.NewScheduleService(tripStore, assembler)
	expenseService := services.NewExpenseService(billStore, tripStore)

	r := router.SetupRouter(router.Dependencies{
		Config:            cfg,
		TripHandler:       handlers.NewTripHandler(scheduleService),
		ScheduleHandler:   handlers.NewScheduleHandler(scheduleService),
		SuggestionHandler: handlers.NewSuggestionHandler(suggestionService),
		ExpenseHandler:    handlers.NewExpenseHandler(expenseService),
		POIHandler:        handlers.NewPOIHandler(poiStore),
		HealthHandler:     handlers.NewHealthHandler(pool, redisClient, cfg.Server.Version),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("Starting server", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("Forced shutdown", "error", err)
	}
}
