package repo

import (
	"sort"
	"strings"

	"salesmanager/internal/models"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
type InMemorySaleRepository struct {
	sales  []models.Sale
	nextID int
}

// NewInMemorySaleRepository creates a new instance of InMemorySaleRepository.
func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{
		sales:  []models.Sale{},
		nextID: 1,
	}
}

// Create adds a new sale to the repository.
func (r *InMemorySaleRepository) Create(sale models.Sale) (models.Sale, error) {
	sale.ID = r.nextID
	r.nextID++
	r.sales = append(r.sales, sale)
	return sale, nil
}

// GetAll retrieves all sales, most recent first.
func (r *InMemorySaleRepository) GetAll() ([]models.Sale, error) {
	out := make([]models.Sale, len(r.sales))
	copy(out, r.sales)
	sort.Slice(out, func(i, j int) bool {
		if out[i].SoldAt.Equal(out[j].SoldAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].SoldAt.After(out[j].SoldAt)
	})
	return out, nil
}

// GetByID retrieves a sale by its ID.
func (r *InMemorySaleRepository) GetByID(id int) (models.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Sale{}, ErrSaleNotFound
}

// Update modifies an existing sale in the repository.
func (r *InMemorySaleRepository) Update(sale models.Sale) (models.Sale, error) {
	for i, s := range r.sales {
		if s.ID == sale.ID {
			r.sales[i] = sale
			return sale, nil
		}
	}
	return models.Sale{}, ErrSaleNotFound
}

// Delete removes a sale from the repository by its ID.
func (r *InMemorySaleRepository) Delete(id int) error {
	for i, s := range r.sales {
		if s.ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return ErrSaleNotFound
}

func matchesFilter(s models.Sale, f SaleFilter) bool {
	if f.Product != "" && !strings.Contains(strings.ToLower(s.Product), strings.ToLower(f.Product)) {
		return false
	}
	price := s.UnitPrice.InexactFloat64()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	if f.From != nil && s.SoldAt.Before(*f.From) {
		return false
	}
	if f.To != nil && s.SoldAt.After(*f.To) {
		return false
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Filter returns the sales matching f plus the pre-pagination total count.
func (r *InMemorySaleRepository) Filter(f SaleFilter) ([]models.Sale, int, error) {
	all, _ := r.GetAll()

	var filtered []models.Sale
	for _, s := range all {
		if matchesFilter(s, f) {
			filtered = append(filtered, s)
		}
	}

	if f.Offset != nil && *f.Offset > len(filtered) {
		return []models.Sale{}, len(filtered), nil
	}

	start := 0
	if f.Offset != nil {
		start = clamp(*f.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if f.Limit != nil && *f.Limit > 0 {
		end = clamp(start+*f.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

func (r *InMemorySaleRepository) Clear() {
	r.sales = []models.Sale{}
	r.nextID = 1
}
