package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"identity-api/config"
	"identity-api/internal/application/ports"
	"identity-api/internal/application/services"
	"identity-api/internal/domain/identity"
	memory "identity-api/internal/infrastructure/db/memory/identity"
	"identity-api/internal/infrastructure/db/postgres"
	pgidentity "identity-api/internal/infrastructure/db/postgres/identity"
	"identity-api/internal/infrastructure/jwt"
	"identity-api/internal/infrastructure/metrics"
	"identity-api/internal/infrastructure/mq"
	"identity-api/internal/interface/api/rest"
	"identity-api/internal/interface/api/rest/middleware"
	"identity-api/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	repo       identity.Repository
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// config
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("error loading .env file: %v", err)
	}
	cfg := config.Load()

	// logger
	logger, err := newLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	if err = cfg.Validate(); err != nil {
		logger.Fatal("config error", zap.Error(err))
	}

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	a := &App{
		logger:   logger,
		cfg:      cfg,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
	}

	// storage
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		dbDsn, err := cfg.DBDSN()
		if err != nil {
			logger.Fatal("DB config error", zap.Error(err))
		}
		dbPool, err := postgres.New(ctx, logger, dbDsn)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		repo := pgidentity.NewRepository(dbPool)
		if cfg.Storage.Migrate {
			if err = repo.Migrate(ctx); err != nil {
				logger.Fatal("failed to migrate database", zap.Error(err))
			}
		}
		a.db, a.repo = dbPool, repo
	default:
		a.repo = memory.NewRepository()
	}
	logger.Info("storage ready", zap.String("driver", cfg.Storage.Driver))

	if !cfg.MQEnabled() {
		logger.Info("RABBITMQ_HOST not set, identity events are not published")
		return a, nil
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}
	a.mq = rbMQ

	// rmqConsumer
	if cfg.MQ.Audit {
		rmqConsumer := rmqconsumer.New(cfg.MQ, logger, os.Stdout)
		if err = rmqConsumer.Connect(rabbitDsn); err != nil {
			logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
		}
		if err = rmqConsumer.Init(); err != nil {
			logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
		}
		a.mqConsumer = rmqConsumer
	}

	return a, nil
}

func newLogger(env string) (*zap.Logger, error) {
	switch env {
	case "", gin.DebugMode, "dev", "development":
		return zap.NewDevelopment()
	default:
		return zap.NewProduction()
	}
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		_ = a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(ctx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// services
	var publisher ports.EventPublisher
	if a.mq != nil {
		publisher = a.mq
	}
	identityService := services.NewIdentityService(a.repo, publisher, a.mCounter, a.logger)

	var jwtService *jwt.Service
	if a.cfg.AuthEnabled() {
		jwtService = jwt.New(a.cfg.App.JWTSecret)
	} else {
		a.logger.Warn("SERVICE_JWT_SECRET not set, command routes are open")
	}

	// controllers
	rest.NewIdentityController(a.router, identityService, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
