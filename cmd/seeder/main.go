package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"DB_NAME"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	csvPath := flag.String("csv", "games.csv", "Path to a CSV of game names (first column, header skipped)")
	clearFirst := flag.Bool("clear", false, "Wipe the games table before importing")
	flag.Parse()

	log.Info("Starting game seeder...")
	cfg := loadConfig()

	db, err := sql.Open("sqlite3", cfg["DB_NAME"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %s", err)
	}

	if *clearFirst {
		res, err := db.Exec("DELETE FROM games")
		if err != nil {
			log.Fatalf("Failed to clear games table: %s", err)
		}
		deleted, _ := res.RowsAffected()
		log.Info("Cleared games table", "deleted", deleted)
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %s", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	inserted := 0
	skipped := 0
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			tx.Rollback()
			log.Fatalf("Failed to read CSV: %s", err)
		}
		if header {
			header = false
			continue
		}
		if len(record) == 0 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" {
			skipped++
			continue
		}

		_, err = tx.Exec(
			"INSERT INTO games (id, name, extensions, min_players, max_players, min_minutes, max_minutes, status) VALUES (?, ?, '', 0, 0, 0, 0, '')",
			uuid.NewString(), name,
		)
		if err != nil {
			tx.Rollback()
			log.Fatalf("Failed to insert game %q: %s", name, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	log.Info("Import finished", "inserted", inserted, "skipped", skipped)
}
