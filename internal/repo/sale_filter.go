package repo

import "time"

// SaleFilter narrows and paginates sale queries. Nil fields are ignored.
type SaleFilter struct {
	Product  string
	MinPrice *float64
	MaxPrice *float64
	From     *time.Time
	To       *time.Time
	Offset   *int
	Limit    *int
}
