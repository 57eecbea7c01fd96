package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	importapp "github.com/muhammadheryan/inventory-workflow/application/importrequest"
	stockapp "github.com/muhammadheryan/inventory-workflow/application/stock"
	stockcheckapp "github.com/muhammadheryan/inventory-workflow/application/stockcheck"
	transferapp "github.com/muhammadheryan/inventory-workflow/application/transfer"
	userapp "github.com/muhammadheryan/inventory-workflow/application/user"
	"github.com/muhammadheryan/inventory-workflow/cmd/config"
	redisclient "github.com/muhammadheryan/inventory-workflow/cmd/redis"
	_ "github.com/muhammadheryan/inventory-workflow/docs"
	directoryRepo "github.com/muhammadheryan/inventory-workflow/repository/directory"
	importRepo "github.com/muhammadheryan/inventory-workflow/repository/importrequest"
	redisRepo "github.com/muhammadheryan/inventory-workflow/repository/redis"
	stockRepo "github.com/muhammadheryan/inventory-workflow/repository/stock"
	stockCheckRepo "github.com/muhammadheryan/inventory-workflow/repository/stockcheck"
	transferRepo "github.com/muhammadheryan/inventory-workflow/repository/transfer"
	txRepo "github.com/muhammadheryan/inventory-workflow/repository/tx"
	userRepo "github.com/muhammadheryan/inventory-workflow/repository/user"
	"github.com/muhammadheryan/inventory-workflow/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-workflow/transport"
	"github.com/muhammadheryan/inventory-workflow/utils/logger"
	validatorx "github.com/muhammadheryan/inventory-workflow/utils/validator"
	"go.uber.org/zap"
)

// @title INVENTORY WORKFLOW API
// @version 1.0
// @description Stock checks, branch transfers and supplier imports over a per-branch stock ledger
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Workflow events are best effort, the engines run without a broker
	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Warn("err connect rabbitmq, events disabled", zap.Error(err))
		} else {
			publisher = p
			defer p.Close()
		}
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	StockRepo := stockRepo.NewStockRepository(db)
	DirectoryRepo := directoryRepo.NewDirectoryRepository(db)
	StockCheckRepo := stockCheckRepo.NewStockCheckRepository(db)
	TransferRepo := transferRepo.NewTransferRepository(db)
	ImportRepo := importRepo.NewImportRepository(db)

	// Initialize application layers
	httpTransport := transport.NewTransport(cfg.Internal.APIKey, &transport.RestHandler{
		UserApp:       userapp.NewUserApp(cfg, UserRepo, RedisRepo),
		StockCheckApp: stockcheckapp.NewStockCheckApp(TxRepo, StockCheckRepo, StockRepo, DirectoryRepo, publisher),
		TransferApp:   transferapp.NewTransferApp(TxRepo, TransferRepo, StockRepo, DirectoryRepo, publisher),
		ImportApp:     importapp.NewImportApp(TxRepo, ImportRepo, StockRepo, DirectoryRepo, publisher),
		StockApp:      stockapp.NewStockApp(StockRepo, DirectoryRepo),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
