package main

import (
	"log"
	"os"

	"prompt-manager/internal/model"
	"prompt-manager/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// 3. Schema for the postgres storage driver
	log.Println("Running AutoMigrate for storage_entries...")
	if err := db.AutoMigrate(&model.StorageEntry{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Keep updated_at honest for rows written outside the app
	triggerSQL := []string{
		`CREATE OR REPLACE FUNCTION set_current_timestamp_updated_at() RETURNS trigger LANGUAGE plpgsql AS $$
		BEGIN
		  NEW.updated_at = now();
		  RETURN NEW;
		END; $$;`,
		`DROP TRIGGER IF EXISTS set_storage_entries_updated_at ON storage_entries;`,
		`CREATE TRIGGER set_storage_entries_updated_at BEFORE UPDATE ON storage_entries
		 FOR EACH ROW EXECUTE FUNCTION set_current_timestamp_updated_at();`,
	}
	for _, sql := range triggerSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute trigger SQL: %v", err)
		}
	}

	log.Println("Success: storage schema is up to date")
}
