package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pay-ledger.backend/internal/config"
	"pay-ledger.backend/internal/infrastructure/jobs"
	"pay-ledger.backend/internal/infrastructure/repositories"
	"pay-ledger.backend/internal/interfaces/http/handlers"
	"pay-ledger.backend/internal/interfaces/http/middleware"
	"pay-ledger.backend/internal/usecases"
	"pay-ledger.backend/pkg/jwt"
	"pay-ledger.backend/pkg/logger"
	"pay-ledger.backend/pkg/mailer"
	"pay-ledger.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(redis.Options{URL: cfg.Redis.URL, Password: cfg.Redis.Password}); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	txnRepo := repositories.NewWalletTransactionRepository(db)
	paystackRepo := repositories.NewPaystackNotificationRepository(db)
	monnifyRepo := repositories.NewMonnifyNotificationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Outbound mail is optional; notifications are skipped when unset
	var mail usecases.Mailer
	if cfg.SMTP.Host != "" {
		mail = mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	}

	// Initialize usecases
	ledgerUsecase := usecases.NewLedgerUsecase(walletRepo, txnRepo, uow)
	paystackUsecase := usecases.NewPaystackNotificationUsecase(paystackRepo, walletRepo, userRepo, ledgerUsecase, mail)
	monnifyUsecase := usecases.NewMonnifyNotificationUsecase(monnifyRepo, walletRepo, userRepo, ledgerUsecase, mail)

	// Initialize handlers
	walletHandler := handlers.NewWalletHandler(ledgerUsecase)
	paystackHandler := handlers.NewPaystackNotificationHandler(paystackUsecase)
	monnifyHandler := handlers.NewMonnifyNotificationHandler(monnifyUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	replayJob := jobs.NewNotificationReplayJob(paystackUsecase, monnifyUsecase, cfg.Jobs.ReplayInterval)
	go replayJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		walletHandler:   walletHandler,
		paystackHandler: paystackHandler,
		monnifyHandler:  monnifyHandler,
		authMiddleware:  middleware.AuthMiddleware(jwtService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		replayJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 PayLedger Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
