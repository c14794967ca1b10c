package database

import (
	"database/sql"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func InitDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// enable write-ahead logging for better read concurrency
	_, err = db.Exec("PRAGMA journal_mode=WAL;")
	if err != nil {
		log.Printf("warning: failed to set WAL mode: %v", err)
	}

	sqlStmt := `
	CREATE TABLE IF NOT EXISTS awards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER,
		ceremony INTEGER,
		ceremony_date TEXT,
		film_years TEXT,
		category TEXT,
		original_category TEXT,
		imdb TEXT,
		tmdb TEXT,
		release_date TEXT,
		img TEXT,
		isActing TEXT,
		isWinner TEXT,
		title TEXT,
		names TEXT,
		notes TEXT
	);
	`
	_, err = db.Exec(sqlStmt)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create awards table: %w", err)
	}

	log.Println("database initialized successfully at", dataSourceName)
	return db, nil
}
