package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"salesmanager/internal/models"
	"salesmanager/internal/repo"
)

func saleFromRequest(req SaleRequest) models.Sale {
	soldAt := time.Now().UTC()
	if req.SoldAt != "" {
		// Validated beforehand.
		if t, err := time.Parse(time.RFC3339, req.SoldAt); err == nil {
			soldAt = t
		}
	}
	return models.Sale{
		Product:   req.Product,
		UnitPrice: decimal.NewFromFloat(req.UnitPrice),
		Quantity:  req.Quantity,
		SoldAt:    soldAt,
		Note:      req.Note,
	}
}

func saleToResponse(s models.Sale) SaleResponse {
	return SaleResponse{
		Id:        s.ID,
		Product:   s.Product,
		UnitPrice: s.UnitPrice,
		Quantity:  s.Quantity,
		Revenue:   s.Revenue(),
		SoldAt:    s.SoldAt.UTC().Format(time.RFC3339),
		Note:      s.Note,
	}
}

// CreateSaleHandler godoc
// @Summary Record a new sale
// @Description Adds a sale to the ledger
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body SaleRequest true "Sale to record"
// @Success 201 {object} SaleResponse
// @Failure 400 {array} SaleValidationError
// @Router /sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSale(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := saleRepo.Create(saleFromRequest(req))
	if err != nil {
		logger.Error("failed to create sale", zap.Error(err))
		http.Error(w, "could not create sale", http.StatusInternalServerError)
		return
	}

	logger.Info("sale recorded", zap.Int("id", created.ID), zap.String("product", created.Product))
	writeJSON(w, http.StatusCreated, saleToResponse(created))
}

// GetSalesHandler godoc
// @Summary List all sales
// @Tags sales
// @Produce json
// @Success 200 {array} SaleResponse
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := saleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	response := make([]SaleResponse, len(sales))
	for i, s := range sales {
		response[i] = saleToResponse(s)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetSaleByIDHandler godoc
// @Summary Get sale by ID
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} SaleResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /sales/{id} [get]
func GetSaleByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid sale ID", http.StatusBadRequest)
		return
	}

	sale, err := saleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch sale", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, saleToResponse(sale))
}

// UpdateSaleHandler godoc
// @Summary Update a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param sale body SaleRequest true "Updated sale"
// @Success 200 {object} SaleResponse
// @Failure 400 {array} SaleValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /sales/{id} [put]
// @Security BearerAuth
func UpdateSaleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid sale ID", http.StatusBadRequest)
		return
	}

	var req SaleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSale(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	sale := saleFromRequest(req)
	sale.ID = id
	updated, err := saleRepo.Update(sale)
	if err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update sale", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, saleToResponse(updated))
}

// DeleteSaleHandler godoc
// @Summary Delete a sale
// @Tags sales
// @Param id path int true "Sale ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /sales/{id} [delete]
// @Security BearerAuth
func DeleteSaleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid sale ID", http.StatusBadRequest)
		return
	}
	if err := saleRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete sale", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// FilterSalesHandler godoc
// @Summary Filter and paginate sales
// @Tags sales
// @Produce json
// @Param product query string false "Filter by product name"
// @Param minPrice query number false "Minimum unit price"
// @Param maxPrice query number false "Maximum unit price"
// @Param from query string false "Sold at or after (RFC3339)"
// @Param to query string false "Sold at or before (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} SalesSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /sales/search [get]
func FilterSalesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.SaleFilter{
		Product:  q.Get("product"),
		MinPrice: parseFloatPtr(q.Get("minPrice")),
		MaxPrice: parseFloatPtr(q.Get("maxPrice")),
		From:     parseTimePtr(q.Get("from")),
		To:       parseTimePtr(q.Get("to")),
		Offset:   parseIntPtr(q.Get("offset")),
		Limit:    parseIntPtr(q.Get("limit")),
	}

	if filter.Limit != nil && *filter.Limit <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	sales, total, err := saleRepo.Filter(filter)
	if err != nil {
		http.Error(w, "could not filter sales", http.StatusInternalServerError)
		return
	}

	resp := SalesSearchResult{
		Data: make([]SaleResponse, len(sales)),
		Meta: Meta{TotalCount: total},
	}
	for i, s := range sales {
		resp.Data[i] = saleToResponse(s)
	}

	writeJSON(w, http.StatusOK, resp)
}
