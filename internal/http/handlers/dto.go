package handlers

import "github.com/shopspring/decimal"

type SaleRequest struct {
	Product   string  `json:"product"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	SoldAt    string  `json:"sold_at,omitempty"` // RFC3339, defaults to now
	Note      string  `json:"note,omitempty"`
}

type SaleResponse struct {
	Id        int             `json:"id"`
	Product   string          `json:"product"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
	SoldAt    string          `json:"sold_at"`
	Note      string          `json:"note,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type SalesSearchResult struct {
	Data []SaleResponse `json:"data"`
	Meta Meta           `json:"meta,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type ImportRowError struct {
	Line        int    `json:"line"`
	Description string `json:"description"`
}

type ImportSalesResult struct {
	ImportedSalesCount int              `json:"imported"`
	Errors             []ImportRowError `json:"errors"`
}

type ReportResult struct {
	Path string `json:"path"`
}

type ChartsResult struct {
	Paths []string `json:"paths"`
}
