package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a single sales transaction record.
type Sale struct {
	ID        int             `json:"id"`
	Product   string          `json:"product"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	SoldAt    time.Time       `json:"sold_at"`
	Note      string          `json:"note,omitempty"`
}

// Revenue returns the total earned by this sale (unit price times quantity).
func (s Sale) Revenue() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
