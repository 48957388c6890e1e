package main

import (
	"flag"
	"log"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"

	"salesmanager/internal/analytics"
	"salesmanager/internal/auth"
	"salesmanager/internal/config"
	"salesmanager/internal/db"
	api "salesmanager/internal/http"
	"salesmanager/internal/http/handlers"
	rl "salesmanager/internal/http/rate_limiter"
	"salesmanager/internal/report"
	"salesmanager/internal/repo"

	"github.com/shopspring/decimal"
)

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zapCfg.OutputPaths = append(zapCfg.OutputPaths, cfg.File)
	}
	return zapCfg.Build()
}

// @title Sales Manager API
// @version 1.0
// @description Local sales ledger with statistics, reports and charts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Could not load config: %v", err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("❌ Could not set up logging: %v", err)
	}
	defer logger.Sync()

	database, err := db.Connect(cfg.Database.Path)
	if err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	defer database.Close()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("could not hash password", zap.Error(err))
	}

	auth.SetSecret(cfg.Auth.JWTSecret)
	go rl.StartVisitorCleanupLoop()

	saleRepo := repo.NewSQLiteSaleRepository(database)
	analyticsService := analytics.NewService(saleRepo, logger, decimal.NewFromFloat(cfg.Analysis.LowCostThreshold))
	reportService := report.NewService(saleRepo, analyticsService, cfg.Dirs.Reports, cfg.Dirs.Charts, logger)

	handlers.SetSaleRepo(saleRepo)
	handlers.SetMetricsRepo(repo.NewSQLiteMetricsRepository(database))
	handlers.SetAnalyticsService(analyticsService)
	handlers.SetReportService(reportService)
	handlers.SetCredentials(cfg.Auth.Username, string(passwordHash))
	handlers.SetLogger(logger)
	api.SetLogger(logger)

	r := api.NewRouter()
	logger.Info("✅ Server running", zap.String("addr", cfg.Server.Addr))
	if err := http.ListenAndServe(cfg.Server.Addr, api.RateLimit(r)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
