package main

import (
	"flag"
	"log"

	"salesmanager/internal/config"
	"salesmanager/internal/db"
	"salesmanager/internal/migrate"
	"salesmanager/internal/repo"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	legacyDB := flag.String("legacy-db", "vendas.db", "path to the legacy SQLite file")
	legacyJSON := flag.String("legacy-json", "", "path to the legacy JSON export")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	inv, err := migrate.Inspect(*legacyDB, *legacyJSON)
	if err != nil {
		log.Fatalf("could not inspect legacy data: %v", err)
	}
	if !inv.SQLiteFound && !inv.JSONFound {
		log.Println("no legacy data found, nothing to do")
		return
	}

	database, err := db.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatalf("could not open database: %v", err)
	}
	defer database.Close()

	saleRepo := repo.NewSQLiteSaleRepository(database)

	if inv.SQLiteFound {
		backup, err := migrate.Backup(*legacyDB)
		if err != nil {
			log.Fatalf("could not back up legacy database: %v", err)
		}
		log.Printf("legacy database backed up to %s", backup)

		n, err := migrate.FromSQLite(*legacyDB, saleRepo)
		if err != nil {
			log.Fatalf("migration from legacy database failed after %d rows: %v", n, err)
		}
		log.Printf("migrated %d sales from %s", n, *legacyDB)
	}

	if inv.JSONFound {
		n, err := migrate.FromJSON(*legacyJSON, saleRepo)
		if err != nil {
			log.Fatalf("migration from legacy export failed after %d rows: %v", n, err)
		}
		log.Printf("migrated %d sales from %s", n, *legacyJSON)
	}
}
