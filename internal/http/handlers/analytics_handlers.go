package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"salesmanager/internal/analytics"
)

// RevenueReportHandler godoc
// @Summary Revenue of every sale plus the grand total
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.RevenueReport
// @Failure 500 {string} string "Internal error"
// @Router /analytics/revenue [get]
func RevenueReportHandler(w http.ResponseWriter, r *http.Request) {
	report, err := analyticsService.RevenueReport()
	if err != nil {
		http.Error(w, "failed to compute revenue report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// LowCostProductsHandler godoc
// @Summary Sales with a unit price below the threshold
// @Tags analytics
// @Produce json
// @Param threshold query number false "Unit price ceiling (defaults to the configured value)"
// @Success 200 {object} analytics.LowCostReport
// @Failure 400 {string} string "Invalid threshold"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/low-cost [get]
func LowCostProductsHandler(w http.ResponseWriter, r *http.Request) {
	var threshold *decimal.Decimal
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			http.Error(w, "threshold must be a positive number", http.StatusBadRequest)
			return
		}
		d := decimal.NewFromFloat(v)
		threshold = &d
	}

	report, err := analyticsService.LowCostProducts(threshold)
	if err != nil {
		http.Error(w, "failed to compute low-cost analysis", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// AboveAverageSalesHandler godoc
// @Summary Sales whose quantity exceeds the mean
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.AboveAverageReport
// @Failure 500 {string} string "Internal error"
// @Router /analytics/above-average [get]
func AboveAverageSalesHandler(w http.ResponseWriter, r *http.Request) {
	report, err := analyticsService.AboveAverageSales()
	if err != nil {
		http.Error(w, "failed to compute above-average analysis", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ProductBreakdownHandler godoc
// @Summary Per-product quantity, revenue and mean price
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.ProductBreakdown
// @Failure 500 {string} string "Internal error"
// @Router /analytics/products [get]
func ProductBreakdownHandler(w http.ResponseWriter, r *http.Request) {
	breakdown, err := analyticsService.ProductBreakdown()
	if err != nil {
		http.Error(w, "failed to compute product breakdown", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

// TrendsHandler godoc
// @Summary Price, quantity and revenue direction over the recorded period
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.TrendReport
// @Failure 422 {string} string "Not enough sales"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/trends [get]
func TrendsHandler(w http.ResponseWriter, r *http.Request) {
	report, err := analyticsService.Trends()
	if err != nil {
		if errors.Is(err, analytics.ErrInsufficientData) {
			http.Error(w, "not enough sales to analyze trends", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "failed to compute trends", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// OverviewHandler godoc
// @Summary General statistics over all sales
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Overview
// @Failure 500 {string} string "Internal error"
// @Router /analytics/overview [get]
func OverviewHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := analyticsService.Overview()
	if err != nil {
		http.Error(w, "failed to compute overview", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
