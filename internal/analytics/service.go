// Package analytics computes aggregate statistics over the recorded sales.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"salesmanager/internal/models"
	"salesmanager/internal/repo"
)

const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendSteady  = "steady"
)

// Service provides statistical analysis over a SaleRepository.
type Service struct {
	repo             repo.SaleRepository
	logger           *zap.Logger
	lowCostThreshold decimal.Decimal
}

// NewService creates a new analytics Service. lowCostThreshold is the default
// unit-price ceiling for LowCostProducts.
func NewService(r repo.SaleRepository, logger *zap.Logger, lowCostThreshold decimal.Decimal) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:             r,
		logger:           logger,
		lowCostThreshold: lowCostThreshold,
	}
}

// SaleLine is one sale with its computed revenue.
type SaleLine struct {
	ID        int             `json:"id"`
	Product   string          `json:"product"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
	SoldAt    time.Time       `json:"sold_at"`
}

func toLine(s models.Sale) SaleLine {
	return SaleLine{
		ID:        s.ID,
		Product:   s.Product,
		UnitPrice: s.UnitPrice,
		Quantity:  s.Quantity,
		Revenue:   s.Revenue(),
		SoldAt:    s.SoldAt,
	}
}

type RevenueReport struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Lines        []SaleLine      `json:"lines"`
	LineCount    int             `json:"line_count"`
}

// RevenueReport returns the revenue of every sale and the grand total.
func (s *Service) RevenueReport() (RevenueReport, error) {
	sales, err := s.repo.GetAll()
	if err != nil {
		return RevenueReport{}, fmt.Errorf("failed to load sales: %w", err)
	}

	report := RevenueReport{Lines: make([]SaleLine, 0, len(sales))}
	for _, sale := range sales {
		line := toLine(sale)
		report.TotalRevenue = report.TotalRevenue.Add(line.Revenue)
		report.Lines = append(report.Lines, line)
	}
	report.LineCount = len(report.Lines)

	s.logger.Info("revenue report computed",
		zap.Int("lines", report.LineCount),
		zap.String("total_revenue", report.TotalRevenue.String()),
	)
	return report, nil
}

type LowCostReport struct {
	Threshold    decimal.Decimal `json:"threshold"`
	Sales        []SaleLine      `json:"sales"`
	Count        int             `json:"count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// LowCostProducts returns the sales whose unit price is below the threshold.
// A nil threshold falls back to the configured default.
func (s *Service) LowCostProducts(threshold *decimal.Decimal) (LowCostReport, error) {
	limit := s.lowCostThreshold
	if threshold != nil {
		limit = *threshold
	}

	sales, err := s.repo.GetAll()
	if err != nil {
		return LowCostReport{}, fmt.Errorf("failed to load sales: %w", err)
	}

	report := LowCostReport{Threshold: limit, Sales: []SaleLine{}}
	for _, sale := range sales {
		if sale.UnitPrice.LessThan(limit) {
			line := toLine(sale)
			report.Sales = append(report.Sales, line)
			report.TotalRevenue = report.TotalRevenue.Add(line.Revenue)
		}
	}
	report.Count = len(report.Sales)

	s.logger.Info("low-cost analysis computed",
		zap.String("threshold", limit.String()),
		zap.Int("matches", report.Count),
	)
	return report, nil
}

type AboveAverageSale struct {
	SaleLine
	Delta float64 `json:"delta"`
}

type AboveAverageReport struct {
	MeanQuantity float64            `json:"mean_quantity"`
	Sales        []AboveAverageSale `json:"sales"`
	Count        int                `json:"count"`
	TotalSales   int                `json:"total_sales"`
}

// AboveAverageSales returns the sales whose quantity exceeds the mean
// quantity across all sales.
func (s *Service) AboveAverageSales() (AboveAverageReport, error) {
	sales, err := s.repo.GetAll()
	if err != nil {
		return AboveAverageReport{}, fmt.Errorf("failed to load sales: %w", err)
	}

	report := AboveAverageReport{Sales: []AboveAverageSale{}, TotalSales: len(sales)}
	if len(sales) == 0 {
		return report, nil
	}

	total := 0
	for _, sale := range sales {
		total += sale.Quantity
	}
	report.MeanQuantity = float64(total) / float64(len(sales))

	for _, sale := range sales {
		if float64(sale.Quantity) > report.MeanQuantity {
			report.Sales = append(report.Sales, AboveAverageSale{
				SaleLine: toLine(sale),
				Delta:    float64(sale.Quantity) - report.MeanQuantity,
			})
		}
	}
	report.Count = len(report.Sales)

	s.logger.Info("above-average analysis computed",
		zap.Float64("mean_quantity", report.MeanQuantity),
		zap.Int("matches", report.Count),
	)
	return report, nil
}

type ProductSummary struct {
	Product       string          `json:"product"`
	SaleCount     int             `json:"sale_count"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	MeanUnitPrice decimal.Decimal `json:"mean_unit_price"`
}

type ProductBreakdown struct {
	Products      []ProductSummary `json:"products"`
	TotalProducts int              `json:"total_products"`
}

// ProductBreakdown groups the sales by product name, with per-product
// quantity, revenue and mean unit price. Products come sorted by revenue,
// highest first.
func (s *Service) ProductBreakdown() (ProductBreakdown, error) {
	sales, err := s.repo.GetAll()
	if err != nil {
		return ProductBreakdown{}, fmt.Errorf("failed to load sales: %w", err)
	}

	grouped := map[string]*ProductSummary{}
	priceSums := map[string]decimal.Decimal{}
	for _, sale := range sales {
		g, ok := grouped[sale.Product]
		if !ok {
			g = &ProductSummary{Product: sale.Product}
			grouped[sale.Product] = g
		}
		g.SaleCount++
		g.TotalQuantity += sale.Quantity
		g.TotalRevenue = g.TotalRevenue.Add(sale.Revenue())
		priceSums[sale.Product] = priceSums[sale.Product].Add(sale.UnitPrice)
	}

	breakdown := ProductBreakdown{Products: make([]ProductSummary, 0, len(grouped)), TotalProducts: len(grouped)}
	for name, g := range grouped {
		g.MeanUnitPrice = priceSums[name].Div(decimal.NewFromInt(int64(g.SaleCount)))
		breakdown.Products = append(breakdown.Products, *g)
	}
	sort.Slice(breakdown.Products, func(i, j int) bool {
		return breakdown.Products[i].TotalRevenue.GreaterThan(breakdown.Products[j].TotalRevenue)
	})

	return breakdown, nil
}

type TrendReport struct {
	PriceTrend       string          `json:"price_trend"`
	QuantityTrend    string          `json:"quantity_trend"`
	RevenueGrowthPct decimal.Decimal `json:"revenue_growth_pct"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	SalesAnalyzed    int             `json:"sales_analyzed"`
}

// ErrInsufficientData is returned by Trends when there are fewer than two
// sales to compare.
var ErrInsufficientData = fmt.Errorf("not enough sales to analyze trends")

// Trends compares the oldest and newest sales: price and quantity direction
// plus the revenue growth between them as a percentage.
func (s *Service) Trends() (TrendReport, error) {
	sales, err := s.repo.GetAll()
	if err != nil {
		return TrendReport{}, fmt.Errorf("failed to load sales: %w", err)
	}
	if len(sales) < 2 {
		return TrendReport{}, ErrInsufficientData
	}

	ordered := make([]models.Sale, len(sales))
	copy(ordered, sales)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].SoldAt.Before(ordered[j].SoldAt) })

	first, last := ordered[0], ordered[len(ordered)-1]

	report := TrendReport{
		PriceTrend:    direction(first.UnitPrice.Cmp(last.UnitPrice)),
		QuantityTrend: direction(compareInts(first.Quantity, last.Quantity)),
		PeriodStart:   first.SoldAt,
		PeriodEnd:     last.SoldAt,
		SalesAnalyzed: len(ordered),
	}

	if !first.Revenue().IsZero() {
		report.RevenueGrowthPct = last.Revenue().Sub(first.Revenue()).
			Div(first.Revenue()).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	s.logger.Info("trend analysis computed",
		zap.String("price_trend", report.PriceTrend),
		zap.String("quantity_trend", report.QuantityTrend),
	)
	return report, nil
}

func direction(cmp int) string {
	switch {
	case cmp < 0:
		return TrendRising
	case cmp > 0:
		return TrendFalling
	default:
		return TrendSteady
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

type ProductRef struct {
	Product  string          `json:"product"`
	Quantity int             `json:"quantity,omitempty"`
	Revenue  decimal.Decimal `json:"revenue,omitempty"`
}

type Overview struct {
	TotalSales    int             `json:"total_sales"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalQuantity int             `json:"total_quantity"`
	MeanUnitPrice decimal.Decimal `json:"mean_unit_price"`
	MeanQuantity  float64         `json:"mean_quantity"`
	BestSeller    *ProductRef     `json:"best_seller,omitempty"`
	TopEarner     *ProductRef     `json:"top_earner,omitempty"`
}

// Overview returns the general statistics block shown on the dashboard.
func (s *Service) Overview() (Overview, error) {
	sales, err := s.repo.GetAll()
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load sales: %w", err)
	}

	overview := Overview{TotalSales: len(sales)}
	if len(sales) == 0 {
		return overview, nil
	}

	priceSum := decimal.Zero
	byProductQty := map[string]int{}
	byProductRevenue := map[string]decimal.Decimal{}
	for _, sale := range sales {
		overview.TotalRevenue = overview.TotalRevenue.Add(sale.Revenue())
		overview.TotalQuantity += sale.Quantity
		priceSum = priceSum.Add(sale.UnitPrice)
		byProductQty[sale.Product] += sale.Quantity
		byProductRevenue[sale.Product] = byProductRevenue[sale.Product].Add(sale.Revenue())
	}

	count := decimal.NewFromInt(int64(len(sales)))
	overview.MeanUnitPrice = priceSum.Div(count)
	overview.MeanQuantity = float64(overview.TotalQuantity) / float64(len(sales))

	for name, qty := range byProductQty {
		if overview.BestSeller == nil || qty > overview.BestSeller.Quantity {
			overview.BestSeller = &ProductRef{Product: name, Quantity: qty}
		}
	}
	for name, revenue := range byProductRevenue {
		if overview.TopEarner == nil || revenue.GreaterThan(overview.TopEarner.Revenue) {
			overview.TopEarner = &ProductRef{Product: name, Revenue: revenue}
		}
	}

	return overview, nil
}
