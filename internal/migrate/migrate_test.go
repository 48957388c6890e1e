package migrate

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"salesmanager/internal/repo"
)

func writeLegacyDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vendas.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE vendas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL,
		preco REAL NOT NULL,
		quantidade INTEGER NOT NULL
	)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO vendas (nome, preco, quantidade) VALUES
		('Notebook', 1200.0, 2),
		('Mouse', 25.5, 3)`)
	require.NoError(t, err)
	return path
}

func TestInspect(t *testing.T) {
	dbPath := writeLegacyDB(t)

	jsonPath := filepath.Join(t.TempDir(), "vendas.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[]`), 0o644))

	inv, err := Inspect(dbPath, jsonPath)
	require.NoError(t, err)
	require.True(t, inv.SQLiteFound)
	require.Equal(t, 2, inv.SQLiteRows)
	require.True(t, inv.JSONFound)
}

func TestInspectNothingFound(t *testing.T) {
	dir := t.TempDir()

	inv, err := Inspect(filepath.Join(dir, "missing.db"), filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	require.False(t, inv.SQLiteFound)
	require.False(t, inv.JSONFound)
}

func TestFromSQLite(t *testing.T) {
	dbPath := writeLegacyDB(t)
	dest := repo.NewInMemorySaleRepository()

	migrated, err := FromSQLite(dbPath, dest)
	require.NoError(t, err)
	require.Equal(t, 2, migrated)

	sales, err := dest.GetAll()
	require.NoError(t, err)
	require.Len(t, sales, 2)

	for _, s := range sales {
		require.Equal(t, "migrated from legacy store", s.Note)
		require.False(t, s.SoldAt.IsZero())
	}
	first, err := dest.GetByID(1)
	require.NoError(t, err)
	require.Equal(t, "Notebook", first.Product)
	require.True(t, first.UnitPrice.Equal(decimal.NewFromInt(1200)))
	require.Equal(t, 2, first.Quantity)
}

func TestFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.json")
	payload := `[
		{"nome": "Teclado", "preco": 89.9, "quantidade": 4},
		{"nome": "Cabo HDMI", "preco": 12.5, "quantidade": 10}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	dest := repo.NewInMemorySaleRepository()
	migrated, err := FromJSON(path, dest)
	require.NoError(t, err)
	require.Equal(t, 2, migrated)

	first, err := dest.GetByID(1)
	require.NoError(t, err)
	require.Equal(t, "Teclado", first.Product)
	require.True(t, first.UnitPrice.Equal(decimal.NewFromFloat(89.9)))
}

func TestFromJSONMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "a list"}`), 0o644))

	_, err := FromJSON(path, repo.NewInMemorySaleRepository())
	require.Error(t, err)
}

func TestBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.db")
	require.NoError(t, os.WriteFile(path, []byte("legacy bytes"), 0o644))

	backupPath, err := Backup(path)
	require.NoError(t, err)
	require.Contains(t, backupPath, ".bak_")

	copied, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	require.Equal(t, "legacy bytes", string(copied))
}
