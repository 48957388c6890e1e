// Package migrate imports sale records from the legacy storage formats:
// the old vendas.db SQLite file and the old JSON export.
package migrate

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"salesmanager/internal/models"
	"salesmanager/internal/repo"
)

// legacyRecord matches the legacy export, which used Portuguese field names.
type legacyRecord struct {
	Name     string  `json:"nome"`
	Price    float64 `json:"preco"`
	Quantity int     `json:"quantidade"`
}

func (lr legacyRecord) toSale(soldAt time.Time) models.Sale {
	return models.Sale{
		Product:   lr.Name,
		UnitPrice: decimal.NewFromFloat(lr.Price),
		Quantity:  lr.Quantity,
		SoldAt:    soldAt,
		Note:      "migrated from legacy store",
	}
}

// Inventory describes what legacy data was found.
type Inventory struct {
	SQLiteFound bool
	SQLiteRows  int
	JSONFound   bool
}

// Inspect reports whether the legacy SQLite file and JSON export exist and
// how many rows the SQLite table holds.
func Inspect(sqlitePath, jsonPath string) (Inventory, error) {
	var inv Inventory

	if sqlitePath != "" {
		if _, err := os.Stat(sqlitePath); err == nil {
			db, err := sql.Open("sqlite", sqlitePath)
			if err != nil {
				return inv, fmt.Errorf("failed to open legacy database: %w", err)
			}
			defer db.Close()

			var table string
			err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='vendas'`).Scan(&table)
			if err == nil {
				inv.SQLiteFound = true
				if err := db.QueryRow(`SELECT COUNT(*) FROM vendas`).Scan(&inv.SQLiteRows); err != nil {
					return inv, fmt.Errorf("failed to count legacy rows: %w", err)
				}
			}
		}
	}

	if jsonPath != "" {
		if _, err := os.Stat(jsonPath); err == nil {
			inv.JSONFound = true
		}
	}
	return inv, nil
}

// FromSQLite copies every row of the legacy vendas table into dest. Legacy
// rows carry no timestamp; sold-at is set to the migration time.
func FromSQLite(path string, dest repo.SaleRepository) (int, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, fmt.Errorf("failed to open legacy database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT nome, preco, quantidade FROM vendas ORDER BY id`)
	if err != nil {
		return 0, fmt.Errorf("failed to read legacy sales: %w", err)
	}
	defer rows.Close()

	now := time.Now().UTC()
	migrated := 0
	for rows.Next() {
		var lr legacyRecord
		if err := rows.Scan(&lr.Name, &lr.Price, &lr.Quantity); err != nil {
			return migrated, fmt.Errorf("failed to scan legacy row: %w", err)
		}
		if _, err := dest.Create(lr.toSale(now)); err != nil {
			return migrated, fmt.Errorf("failed to store migrated sale %q: %w", lr.Name, err)
		}
		migrated++
	}
	return migrated, rows.Err()
}

// FromJSON copies every record of the legacy JSON export into dest.
func FromJSON(path string, dest repo.SaleRepository) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read legacy export: %w", err)
	}

	var records []legacyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("failed to parse legacy export: %w", err)
	}

	now := time.Now().UTC()
	migrated := 0
	for _, lr := range records {
		if _, err := dest.Create(lr.toSale(now)); err != nil {
			return migrated, fmt.Errorf("failed to store migrated sale %q: %w", lr.Name, err)
		}
		migrated++
	}
	return migrated, nil
}

// Backup copies the given file next to itself with a timestamped suffix and
// returns the backup path.
func Backup(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer src.Close()

	backupPath := fmt.Sprintf("%s.bak_%s", path, time.Now().Format("20060102_150405"))
	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return backupPath, nil
}
