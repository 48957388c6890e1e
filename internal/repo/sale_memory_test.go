package repo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"salesmanager/internal/models"
)

func newSale(product string, price float64, qty int, soldAt time.Time) models.Sale {
	return models.Sale{
		Product:   product,
		UnitPrice: decimal.NewFromFloat(price),
		Quantity:  qty,
		SoldAt:    soldAt,
	}
}

func TestInMemoryCreateAssignsIDs(t *testing.T) {
	r := NewInMemorySaleRepository()

	first, err := r.Create(newSale("Notebook", 1200, 1, time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.Create(newSale("Mouse", 25, 2, time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected sequential IDs 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestInMemoryGetByID(t *testing.T) {
	r := NewInMemorySaleRepository()
	created, _ := r.Create(newSale("Keyboard", 45.5, 3, time.Now()))

	got, err := r.GetByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Product != "Keyboard" {
		t.Errorf("expected product 'Keyboard', got %q", got.Product)
	}

	if _, err := r.GetByID(999); err != ErrSaleNotFound {
		t.Errorf("expected ErrSaleNotFound, got %v", err)
	}
}

func TestInMemoryUpdate(t *testing.T) {
	r := NewInMemorySaleRepository()
	created, _ := r.Create(newSale("Monitor", 300, 1, time.Now()))

	created.Quantity = 4
	updated, err := r.Update(created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", updated.Quantity)
	}

	missing := newSale("Ghost", 1, 1, time.Now())
	missing.ID = 999
	if _, err := r.Update(missing); err != ErrSaleNotFound {
		t.Errorf("expected ErrSaleNotFound, got %v", err)
	}
}

func TestInMemoryDelete(t *testing.T) {
	r := NewInMemorySaleRepository()
	created, _ := r.Create(newSale("Cable", 5, 10, time.Now()))

	if err := r.Delete(created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.GetByID(created.ID); err != ErrSaleNotFound {
		t.Errorf("expected sale to be gone, got %v", err)
	}
	if err := r.Delete(created.ID); err != ErrSaleNotFound {
		t.Errorf("expected ErrSaleNotFound, got %v", err)
	}
}

func TestInMemoryGetAllOrdersByMostRecent(t *testing.T) {
	r := NewInMemorySaleRepository()
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	r.Create(newSale("Old", 10, 1, old))
	r.Create(newSale("Recent", 10, 1, recent))

	all, err := r.GetAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(all))
	}
	if all[0].Product != "Recent" {
		t.Errorf("expected most recent sale first, got %q", all[0].Product)
	}
}

func TestInMemoryFilter(t *testing.T) {
	r := NewInMemorySaleRepository()
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	r.Create(newSale("Notebook Pro", 1500, 1, jan))
	r.Create(newSale("Notebook Air", 900, 2, jun))
	r.Create(newSale("Mouse", 20, 5, jun))

	floatPtr := func(v float64) *float64 { return &v }
	intPtr := func(v int) *int { return &v }
	timePtr := func(v time.Time) *time.Time { return &v }

	tests := []struct {
		name          string
		filter        SaleFilter
		expectCount   int
		expectTotal   int
		expectProduct string
	}{
		{
			name:        "no filter returns everything",
			filter:      SaleFilter{},
			expectCount: 3,
			expectTotal: 3,
		},
		{
			name:          "product substring is case insensitive",
			filter:        SaleFilter{Product: "notebook"},
			expectCount:   2,
			expectTotal:   2,
			expectProduct: "Notebook Air",
		},
		{
			name:        "price range",
			filter:      SaleFilter{MinPrice: floatPtr(100), MaxPrice: floatPtr(1000)},
			expectCount: 1,
			expectTotal: 1,
		},
		{
			name:        "date range",
			filter:      SaleFilter{From: timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))},
			expectCount: 2,
			expectTotal: 2,
		},
		{
			name:        "pagination keeps total count",
			filter:      SaleFilter{Limit: intPtr(1), Offset: intPtr(1)},
			expectCount: 1,
			expectTotal: 3,
		},
		{
			name:        "offset beyond results",
			filter:      SaleFilter{Offset: intPtr(10)},
			expectCount: 0,
			expectTotal: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := r.Filter(tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.expectCount {
				t.Errorf("expected %d results, got %d", tt.expectCount, len(got))
			}
			if total != tt.expectTotal {
				t.Errorf("expected total %d, got %d", tt.expectTotal, total)
			}
			if tt.expectProduct != "" && got[0].Product != tt.expectProduct {
				t.Errorf("expected first result %q, got %q", tt.expectProduct, got[0].Product)
			}
		})
	}
}
