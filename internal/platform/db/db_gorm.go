// Package db opens the application database and runs startup migrations.
package db

import (
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_dashboard/internal/feature/auth/domain/entity"
)

// OpenDB connects to the configured database and runs schema migrations.
// When DATABASE_URL is set it connects to Postgres (with a retry window for
// slow container startups); otherwise it falls back to a local SQLite file,
// which is the default for development.
func OpenDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "./stock_app.db"
		}
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Fatalf("failed to open sqlite database: %v", err)
		}
		migrate(db)
		return db
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	migrate(db)
	return db
}

// migrate creates tables if they do not exist. There is no migrations
// framework here; the schema is owned by the entity structs.
func migrate(db *gorm.DB) {
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
}
