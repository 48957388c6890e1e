package repo

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"salesmanager/internal/db"
)

func newSQLiteRepo(t *testing.T) *SQLiteSaleRepository {
	t.Helper()
	database, err := db.Connect(filepath.Join(t.TempDir(), "sales_test.db"))
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewSQLiteSaleRepository(database)
}

func TestSQLiteRoundTrip(t *testing.T) {
	r := newSQLiteRepo(t)

	soldAt := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	sale := newSale("Notebook", 1250.50, 2, soldAt)
	sale.Note = "corporate order"

	created, err := r.Create(sale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a generated ID")
	}

	got, err := r.GetByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Product != "Notebook" {
		t.Errorf("expected product 'Notebook', got %q", got.Product)
	}
	if !got.UnitPrice.Equal(decimal.NewFromFloat(1250.50)) {
		t.Errorf("expected unit price 1250.50, got %s", got.UnitPrice)
	}
	if !got.SoldAt.Equal(soldAt) {
		t.Errorf("expected sold at %v, got %v", soldAt, got.SoldAt)
	}
	if got.Note != "corporate order" {
		t.Errorf("expected note to survive the round trip, got %q", got.Note)
	}
}

func TestSQLiteEmptyNoteIsNull(t *testing.T) {
	r := newSQLiteRepo(t)

	created, err := r.Create(newSale("Mouse", 20, 1, time.Now().UTC().Truncate(time.Second)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := r.GetByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Note != "" {
		t.Errorf("expected empty note, got %q", got.Note)
	}
}

func TestSQLiteUpdateAndDelete(t *testing.T) {
	r := newSQLiteRepo(t)

	created, _ := r.Create(newSale("Monitor", 300, 1, time.Now().UTC().Truncate(time.Second)))

	created.Quantity = 3
	updated, err := r.Update(created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", updated.Quantity)
	}

	if err := r.Delete(created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.GetByID(created.ID); err != ErrSaleNotFound {
		t.Errorf("expected ErrSaleNotFound, got %v", err)
	}
	if err := r.Delete(created.ID); err != ErrSaleNotFound {
		t.Errorf("expected ErrSaleNotFound, got %v", err)
	}

	missing := newSale("Ghost", 1, 1, time.Now())
	missing.ID = 999
	if _, err := r.Update(missing); err != ErrSaleNotFound {
		t.Errorf("expected ErrSaleNotFound, got %v", err)
	}
}

func TestSQLiteFilter(t *testing.T) {
	r := newSQLiteRepo(t)

	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	r.Create(newSale("Notebook Pro", 1500, 1, jan))
	r.Create(newSale("Notebook Air", 900, 2, jun))
	r.Create(newSale("Mouse", 20, 5, jun))

	floatPtr := func(v float64) *float64 { return &v }
	intPtr := func(v int) *int { return &v }
	timePtr := func(v time.Time) *time.Time { return &v }

	got, total, err := r.Filter(SaleFilter{Product: "notebook"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || total != 2 {
		t.Errorf("expected 2 notebook sales, got %d (total %d)", len(got), total)
	}

	got, total, err = r.Filter(SaleFilter{MinPrice: floatPtr(100), MaxPrice: floatPtr(1000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Product != "Notebook Air" {
		t.Errorf("expected only 'Notebook Air' in price range, got %v (total %d)", got, total)
	}

	got, total, err = r.Filter(SaleFilter{From: timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 sales after March, got %d (total %d)", len(got), total)
	}

	got, total, err = r.Filter(SaleFilter{Limit: intPtr(2), Offset: intPtr(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || total != 3 {
		t.Errorf("expected 1 paginated result with total 3, got %d (total %d)", len(got), total)
	}
}

func TestSQLiteMetrics(t *testing.T) {
	database, err := db.Connect(filepath.Join(t.TempDir(), "metrics_test.db"))
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	sales := NewSQLiteSaleRepository(database)
	metrics := NewSQLiteMetricsRepository(database)

	now := time.Now().UTC().Truncate(time.Second)
	sales.Create(newSale("Notebook", 1000, 2, now))
	sales.Create(newSale("Notebook", 1000, 1, now))
	sales.Create(newSale("Mouse", 20, 10, now))

	m, err := metrics.GetDashboardMetrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalSales != 3 {
		t.Errorf("expected 3 sales, got %d", m.TotalSales)
	}
	if m.DistinctProducts != 2 {
		t.Errorf("expected 2 distinct products, got %d", m.DistinctProducts)
	}
	if m.TotalRevenue != 3200 {
		t.Errorf("expected total revenue 3200, got %f", m.TotalRevenue)
	}
	if m.TopProduct.Name != "Mouse" || m.TopProduct.Quantity != 10 {
		t.Errorf("expected Mouse with 10 units as top product, got %+v", m.TopProduct)
	}
}
