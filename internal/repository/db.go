package repository

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bizbalance/internal/model"
)

// Open initializes the primary relational store and migrates the schema.
// DSN "memory" (or empty) uses an in-memory SQLite database, anything else is
// treated as a file path.
func Open(dsn string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	if dsn == "" || dsn == "memory" {
		dsn = "file::memory:?cache=shared"
		log.Println("[Database] using in-memory SQLite")
	} else {
		log.Printf("[Database] using SQLite at %s", dsn)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.HealthIndex{},
		&model.Quest{},
		&model.Notification{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
