package repo

import (
	"context"
	"database/sql"
	"time"
)

type SQLiteMetricsRepository struct {
	db *sql.DB
}

func NewSQLiteMetricsRepository(db *sql.DB) *SQLiteMetricsRepository {
	return &SQLiteMetricsRepository{db: db}
}

func (r *SQLiteMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m Metrics

	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&m.TotalSales)
	_ = r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(unit_price * quantity), 0) FROM sales`).Scan(&m.TotalRevenue)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT product) FROM sales`).Scan(&m.DistinctProducts)

	_ = r.db.QueryRowContext(ctx, `
		SELECT product, SUM(quantity) as qty
		FROM sales
		GROUP BY product
		ORDER BY qty DESC
		LIMIT 1
	`).Scan(&m.TopProduct.Name, &m.TopProduct.Quantity)

	return m, nil
}
