package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

// Connect opens PostgreSQL when the DSN looks like a postgres URL and
// otherwise falls back to a cgo-free SQLite file for local development.
func Connect(dsn string) (*gorm.DB, error) {
	if isPostgres(dsn) {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), gormConfig())
	}

	log.Println("Using SQLite for local development:", dsn)
	return gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	}), gormConfig())
}

// gormConfig translates driver duplicate-key errors into
// gorm.ErrDuplicatedKey on both backends.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
