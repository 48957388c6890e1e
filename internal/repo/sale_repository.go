package repo

import (
	"errors"

	"salesmanager/internal/models"
)

// ErrSaleNotFound is returned when a sale is not found in the repository.
var ErrSaleNotFound = errors.New("sale not found")

// SaleRepository defines the interface for sale data operations.
type SaleRepository interface {
	Create(sale models.Sale) (models.Sale, error)
	GetAll() ([]models.Sale, error)
	GetByID(id int) (models.Sale, error)
	Update(sale models.Sale) (models.Sale, error)
	Delete(id int) error
	Filter(f SaleFilter) ([]models.Sale, int, error)
}
