package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"salesmanager/internal/report"
)

// ExportCSVHandler godoc
// @Summary Export all sales to a CSV file
// @Tags reports
// @Produce json
// @Success 201 {object} ReportResult
// @Failure 422 {string} string "No sales to report"
// @Failure 500 {string} string "Internal error"
// @Router /reports/csv [post]
// @Security BearerAuth
func ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	path, err := reportService.ExportCSV()
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			http.Error(w, "no sales to report", http.StatusUnprocessableEntity)
			return
		}
		logger.Error("CSV export failed", zap.Error(err))
		http.Error(w, "could not export CSV", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, ReportResult{Path: path})
}

// GenerateHTMLReportHandler godoc
// @Summary Generate the full HTML report
// @Tags reports
// @Produce json
// @Success 201 {object} ReportResult
// @Failure 422 {string} string "No sales to report"
// @Failure 500 {string} string "Internal error"
// @Router /reports/html [post]
// @Security BearerAuth
func GenerateHTMLReportHandler(w http.ResponseWriter, r *http.Request) {
	path, err := reportService.GenerateHTML()
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			http.Error(w, "no sales to report", http.StatusUnprocessableEntity)
			return
		}
		logger.Error("HTML report failed", zap.Error(err))
		http.Error(w, "could not generate report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, ReportResult{Path: path})
}

// GenerateChartsHandler godoc
// @Summary Generate the PNG charts
// @Tags reports
// @Produce json
// @Success 201 {object} ChartsResult
// @Failure 422 {string} string "No sales to report"
// @Failure 500 {string} string "Internal error"
// @Router /reports/charts [post]
// @Security BearerAuth
func GenerateChartsHandler(w http.ResponseWriter, r *http.Request) {
	paths, err := reportService.GenerateCharts()
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			http.Error(w, "no sales to report", http.StatusUnprocessableEntity)
			return
		}
		logger.Error("chart generation failed", zap.Error(err))
		http.Error(w, "could not generate charts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, ChartsResult{Paths: paths})
}
