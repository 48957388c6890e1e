package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

type csvRow struct {
	line int
	req  SaleRequest
}

func parseSalesCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"product", "unit_price", "quantity"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []csvRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, csvRow{
			line: line,
			req: SaleRequest{
				Product:   field(record, "product"),
				UnitPrice: parseFloat(field(record, "unit_price")),
				Quantity:  parseInt(field(record, "quantity")),
				SoldAt:    field(record, "sold_at"),
				Note:      field(record, "note"),
			},
		})
	}
	return rows, nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// ImportSalesHandler godoc
// @Summary Import sales via CSV
// @Description Expects columns product, unit_price, quantity and optionally sold_at, note. Invalid rows are skipped and reported.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportSalesResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /sales/import [post]
// @Security BearerAuth
func ImportSalesHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseSalesCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportSalesResult{Errors: []ImportRowError{}}
	for _, row := range rows {
		if validationErrors := validateSale(row.req); len(validationErrors) > 0 {
			descriptions := make([]string, len(validationErrors))
			for i, ve := range validationErrors {
				descriptions[i] = ve.Description
			}
			result.Errors = append(result.Errors, ImportRowError{
				Line:        row.line,
				Description: strings.Join(descriptions, "; "),
			})
			continue
		}

		if _, err := saleRepo.Create(saleFromRequest(row.req)); err != nil {
			result.Errors = append(result.Errors, ImportRowError{
				Line:        row.line,
				Description: "could not store sale",
			})
			continue
		}
		result.ImportedSalesCount++
	}

	writeJSON(w, http.StatusOK, result)
}
