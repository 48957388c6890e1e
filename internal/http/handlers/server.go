package handlers

import (
	"go.uber.org/zap"

	"salesmanager/internal/analytics"
	"salesmanager/internal/repo"
	"salesmanager/internal/report"
)

var (
	saleRepo         repo.SaleRepository
	metricsRepo      repo.MetricsRepository
	analyticsService *analytics.Service
	reportService    *report.Service

	authUsername     string
	authPasswordHash string

	logger = zap.NewNop()
)

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetAnalyticsService(s *analytics.Service) {
	analyticsService = s
}

func SetReportService(s *report.Service) {
	reportService = s
}

// SetCredentials configures the single accepted login: a username and the
// bcrypt hash of its password.
func SetCredentials(username, passwordHash string) {
	authUsername = username
	authPasswordHash = passwordHash
}

func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
