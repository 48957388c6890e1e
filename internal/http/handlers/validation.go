package handlers

import (
	"strings"
	"time"
)

type SaleValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateSale(s SaleRequest) []SaleValidationError {
	errs := []SaleValidationError{}
	if strings.TrimSpace(s.Product) == "" {
		errs = append(errs, SaleValidationError{Field: "Product", Description: "Product is required"})
	} else if len(s.Product) > 100 {
		errs = append(errs, SaleValidationError{Field: "Product", Description: "Product must be at most 100 characters"})
	}
	if s.UnitPrice <= 0 {
		errs = append(errs, SaleValidationError{Field: "UnitPrice", Description: "Unit price must be greater than zero"})
	}
	if s.Quantity <= 0 {
		errs = append(errs, SaleValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	if s.SoldAt != "" {
		if _, err := time.Parse(time.RFC3339, s.SoldAt); err != nil {
			errs = append(errs, SaleValidationError{Field: "SoldAt", Description: "Sold at must be an RFC3339 timestamp"})
		}
	}
	return errs
}
