package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"salesmanager/internal/models"
)

type SQLiteSaleRepository struct {
	db *sql.DB
}

func NewSQLiteSaleRepository(db *sql.DB) *SQLiteSaleRepository {
	return &SQLiteSaleRepository{db: db}
}

func (r *SQLiteSaleRepository) Create(s models.Sale) (models.Sale, error) {
	query := `INSERT INTO sales (product, unit_price, quantity, sold_at, note) VALUES (?, ?, ?, ?, ?)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		s.Product, s.UnitPrice.InexactFloat64(), s.Quantity, s.SoldAt.UTC().Format(time.RFC3339), nullableNote(s.Note))
	if err != nil {
		return models.Sale{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Sale{}, err
	}
	s.ID = int(id)
	return s, nil
}

func (r *SQLiteSaleRepository) GetAll() ([]models.Sale, error) {
	query := `SELECT id, product, unit_price, quantity, sold_at, note FROM sales ORDER BY sold_at DESC, id DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSales(rows)
}

func (r *SQLiteSaleRepository) GetByID(id int) (models.Sale, error) {
	query := `SELECT id, product, unit_price, quantity, sold_at, note FROM sales WHERE id = ?`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	s, err := scanSale(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sale{}, ErrSaleNotFound
	}
	return s, err
}

func (r *SQLiteSaleRepository) Update(s models.Sale) (models.Sale, error) {
	query := `UPDATE sales SET product = ?, unit_price = ?, quantity = ?, sold_at = ?, note = ? WHERE id = ?`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		s.Product, s.UnitPrice.InexactFloat64(), s.Quantity, s.SoldAt.UTC().Format(time.RFC3339), nullableNote(s.Note), s.ID)
	if err != nil {
		return models.Sale{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

func (r *SQLiteSaleRepository) Delete(id int) error {
	query := `DELETE FROM sales WHERE id = ?`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrSaleNotFound
	}
	return nil
}

func (r *SQLiteSaleRepository) Filter(f SaleFilter) ([]models.Sale, int, error) {
	conditions, args := filterConditions(f)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM sales WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, product, unit_price, quantity, sold_at, note FROM sales WHERE 1=1` + conditions
	query += " ORDER BY sold_at DESC, id DESC"

	if f.Limit != nil && *f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, *f.Limit)
		if f.Offset != nil && *f.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, *f.Offset)
		}
	} else if f.Offset != nil && *f.Offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, *f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sales, err := scanSales(rows)
	if err != nil {
		return nil, 0, err
	}
	return sales, totalCount, nil
}

func filterConditions(f SaleFilter) (string, []any) {
	query := ""
	args := []any{}

	if f.Product != "" {
		query += " AND product LIKE ? COLLATE NOCASE"
		args = append(args, "%"+f.Product+"%")
	}
	if f.MinPrice != nil {
		query += " AND unit_price >= ?"
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query += " AND unit_price <= ?"
		args = append(args, *f.MaxPrice)
	}
	if f.From != nil {
		query += " AND sold_at >= ?"
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		query += " AND sold_at <= ?"
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}

	return query, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSale(row rowScanner) (models.Sale, error) {
	var (
		s      models.Sale
		price  float64
		soldAt string
		note   sql.NullString
	)
	if err := row.Scan(&s.ID, &s.Product, &price, &s.Quantity, &soldAt, &note); err != nil {
		return models.Sale{}, err
	}

	s.UnitPrice = decimal.NewFromFloat(price)
	s.Note = note.String

	t, err := time.Parse(time.RFC3339, soldAt)
	if err != nil {
		return models.Sale{}, fmt.Errorf("invalid sold_at timestamp %q: %w", soldAt, err)
	}
	s.SoldAt = t
	return s, nil
}

func scanSales(rows *sql.Rows) ([]models.Sale, error) {
	var sales []models.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func nullableNote(note string) any {
	if note == "" {
		return nil
	}
	return note
}
