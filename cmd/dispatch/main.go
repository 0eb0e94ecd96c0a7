package main

import (
	"context"
	"os"

	"github.com/helloauto/dispatch/internal/pkg/config"
	"github.com/helloauto/dispatch/internal/pkg/database"
	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/middleware"
	nsqpkg "github.com/helloauto/dispatch/internal/pkg/nsq"
	"github.com/helloauto/dispatch/internal/pkg/server"
	wsmanager "github.com/helloauto/dispatch/internal/pkg/websocket"
	ridesGateway "github.com/helloauto/dispatch/services/rides/gateway"
	ridesHandler "github.com/helloauto/dispatch/services/rides/handler"
	ridesRepo "github.com/helloauto/dispatch/services/rides/repository"
	ridesUC "github.com/helloauto/dispatch/services/rides/usecase"
	standsHandler "github.com/helloauto/dispatch/services/stands/handler"
	standsRepo "github.com/helloauto/dispatch/services/stands/repository"
	standsUC "github.com/helloauto/dispatch/services/stands/usecase"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	cfg := config.InitConfig(configPath)

	appLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	logger.SetGlobalLogger(appLogger)
	defer appLogger.Close()

	logger.Info("Starting dispatch service",
		logger.String("version", cfg.App.Version),
		logger.String("environment", cfg.App.Environment))

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		logger.Fatal("Failed to ensure database schema", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	manager := wsmanager.NewManager(cfg.JWT, redisClient)

	// Stands service
	standRepository := standsRepo.NewStandRepository(db, redisClient)
	standUsecase := standsUC.NewStandUC(cfg.Dispatch, standRepository, manager)

	// Rides service
	rideRepository := ridesRepo.NewRideRepository(db)
	otpRepository := ridesRepo.NewOTPRepository(redisClient)
	rideGateway := ridesGateway.NewRideGW(producer)
	rideUsecase := ridesUC.NewRideUC(
		cfg.Dispatch,
		rideRepository,
		otpRepository,
		rideGateway,
		manager,
		standUsecase,
		standUsecase,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	standsHandler.NewHandler(standUsecase).RegisterRoutes(e)
	rides := ridesHandler.NewHandler(rideUsecase, manager, cfg.NSQ)
	rides.RegisterRoutes(e)

	if err := rides.StartConsumers(); err != nil {
		logger.Fatal("Failed to start NSQ consumers", logger.Err(err))
	}

	shutdown := server.NewShutdownManager()
	shutdown.Register(func(ctx context.Context) error {
		rides.StopConsumers()
		return nil
	})

	srv := server.NewGracefulServer(e, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server exited with error", logger.Err(err))
	}

	if err := shutdown.Shutdown(context.Background()); err != nil {
		logger.Error("Component shutdown failed", logger.Err(err))
	}
}
