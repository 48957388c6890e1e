package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"

	"salesmanager/internal/models"
	"salesmanager/internal/repo"
)

func seedService(t *testing.T, sales ...models.Sale) *Service {
	t.Helper()
	r := repo.NewInMemorySaleRepository()
	for _, s := range sales {
		if _, err := r.Create(s); err != nil {
			t.Fatalf("could not seed sale: %v", err)
		}
	}
	return NewService(r, zaptest.NewLogger(t), decimal.NewFromInt(20))
}

func sale(product string, price float64, qty int, day int) models.Sale {
	return models.Sale{
		Product:   product,
		UnitPrice: decimal.NewFromFloat(price),
		Quantity:  qty,
		SoldAt:    time.Date(2024, 3, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestRevenueReport(t *testing.T) {
	svc := seedService(t,
		sale("Notebook", 1000, 2, 1), // 2000
		sale("Mouse", 25, 4, 2),      // 100
	)

	report, err := svc.RevenueReport()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.LineCount != 2 {
		t.Errorf("expected 2 lines, got %d", report.LineCount)
	}
	if !report.TotalRevenue.Equal(decimal.NewFromInt(2100)) {
		t.Errorf("expected total revenue 2100, got %s", report.TotalRevenue)
	}
}

func TestRevenueReportEmptyStore(t *testing.T) {
	svc := seedService(t)

	report, err := svc.RevenueReport()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.LineCount != 0 || !report.TotalRevenue.IsZero() {
		t.Errorf("expected zeroed report, got %+v", report)
	}
}

func TestLowCostProducts(t *testing.T) {
	svc := seedService(t,
		sale("Notebook", 1000, 1, 1),
		sale("Mouse", 15, 2, 2),  // below default threshold of 20
		sale("Cable", 19.99, 1, 3),
		sale("Webcam", 20, 1, 4), // exactly at the threshold: excluded
	)

	report, err := svc.LowCostProducts(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Count != 2 {
		t.Errorf("expected 2 low-cost sales, got %d", report.Count)
	}
	if !report.TotalRevenue.Equal(decimal.NewFromFloat(49.99)) {
		t.Errorf("expected combined revenue 49.99, got %s", report.TotalRevenue)
	}

	custom := decimal.NewFromInt(2000)
	report, err = svc.LowCostProducts(&custom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Count != 4 {
		t.Errorf("expected every sale below 2000, got %d", report.Count)
	}
}

func TestAboveAverageSales(t *testing.T) {
	svc := seedService(t,
		sale("A", 10, 1, 1),
		sale("B", 10, 2, 2),
		sale("C", 10, 6, 3), // mean is 3, only C is above
	)

	report, err := svc.AboveAverageSales()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.MeanQuantity != 3 {
		t.Errorf("expected mean quantity 3, got %f", report.MeanQuantity)
	}
	if report.Count != 1 || report.Sales[0].Product != "C" {
		t.Fatalf("expected only 'C' above the mean, got %+v", report.Sales)
	}
	if report.Sales[0].Delta != 3 {
		t.Errorf("expected delta 3, got %f", report.Sales[0].Delta)
	}
}

func TestAboveAverageSalesEmptyStore(t *testing.T) {
	svc := seedService(t)

	report, err := svc.AboveAverageSales()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Count != 0 || report.MeanQuantity != 0 {
		t.Errorf("expected zeroed report, got %+v", report)
	}
}

func TestProductBreakdown(t *testing.T) {
	svc := seedService(t,
		sale("Notebook", 1000, 1, 1),
		sale("Notebook", 1200, 1, 2),
		sale("Mouse", 20, 10, 3),
	)

	breakdown, err := svc.ProductBreakdown()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if breakdown.TotalProducts != 2 {
		t.Fatalf("expected 2 products, got %d", breakdown.TotalProducts)
	}

	top := breakdown.Products[0]
	if top.Product != "Notebook" {
		t.Errorf("expected 'Notebook' first by revenue, got %q", top.Product)
	}
	if top.SaleCount != 2 || top.TotalQuantity != 2 {
		t.Errorf("expected 2 sales of 2 units, got %+v", top)
	}
	if !top.TotalRevenue.Equal(decimal.NewFromInt(2200)) {
		t.Errorf("expected revenue 2200, got %s", top.TotalRevenue)
	}
	if !top.MeanUnitPrice.Equal(decimal.NewFromInt(1100)) {
		t.Errorf("expected mean price 1100, got %s", top.MeanUnitPrice)
	}
}

func TestTrends(t *testing.T) {
	svc := seedService(t,
		sale("A", 10, 5, 1),  // revenue 50
		sale("B", 15, 2, 10), // mid sale, ignored by the endpoints comparison
		sale("C", 20, 3, 20), // revenue 60
	)

	report, err := svc.Trends()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.PriceTrend != TrendRising {
		t.Errorf("expected rising price trend, got %q", report.PriceTrend)
	}
	if report.QuantityTrend != TrendFalling {
		t.Errorf("expected falling quantity trend, got %q", report.QuantityTrend)
	}
	if !report.RevenueGrowthPct.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected 20%% revenue growth, got %s", report.RevenueGrowthPct)
	}
	if report.SalesAnalyzed != 3 {
		t.Errorf("expected 3 sales analyzed, got %d", report.SalesAnalyzed)
	}
}

func TestTrendsInsufficientData(t *testing.T) {
	svc := seedService(t, sale("A", 10, 1, 1))

	if _, err := svc.Trends(); err != ErrInsufficientData {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestOverview(t *testing.T) {
	svc := seedService(t,
		sale("Notebook", 1000, 2, 1), // revenue 2000
		sale("Mouse", 20, 10, 2),     // revenue 200
	)

	overview, err := svc.Overview()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.TotalSales != 2 || overview.TotalQuantity != 12 {
		t.Errorf("expected 2 sales of 12 units, got %+v", overview)
	}
	if !overview.TotalRevenue.Equal(decimal.NewFromInt(2200)) {
		t.Errorf("expected total revenue 2200, got %s", overview.TotalRevenue)
	}
	if !overview.MeanUnitPrice.Equal(decimal.NewFromInt(510)) {
		t.Errorf("expected mean price 510, got %s", overview.MeanUnitPrice)
	}
	if overview.MeanQuantity != 6 {
		t.Errorf("expected mean quantity 6, got %f", overview.MeanQuantity)
	}
	if overview.BestSeller == nil || overview.BestSeller.Product != "Mouse" {
		t.Errorf("expected 'Mouse' as best seller, got %+v", overview.BestSeller)
	}
	if overview.TopEarner == nil || overview.TopEarner.Product != "Notebook" {
		t.Errorf("expected 'Notebook' as top earner, got %+v", overview.TopEarner)
	}
}

func TestOverviewEmptyStore(t *testing.T) {
	svc := seedService(t)

	overview, err := svc.Overview()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.TotalSales != 0 || overview.BestSeller != nil || overview.TopEarner != nil {
		t.Errorf("expected zeroed overview, got %+v", overview)
	}
}
