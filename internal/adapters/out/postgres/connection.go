package postgres

import (
	"database/sql"
	"fmt"

	"shiptrack/internal/adapters/out/postgres/historyrepo"
	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/adapters/out/postgres/statusrepo"

	_ "github.com/lib/pq" // database/sql driver for the bootstrap connection
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectionParams carries everything needed to reach the database server.
type ConnectionParams struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (p ConnectionParams) dsn(dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, dbName, p.SSLMode)
}

// CreateDatabaseIfNotExists connects to the maintenance database and creates
// the application database when it is missing. Postgres has no CREATE
// DATABASE IF NOT EXISTS, so existence is checked first.
func CreateDatabaseIfNotExists(params ConnectionParams) error {
	db, err := sql.Open("postgres", params.dsn("postgres"))
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow(`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`, params.DBName).
		Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = db.Exec(fmt.Sprintf(`CREATE DATABASE %q`, params.DBName))
	return err
}

// Open establishes the GORM connection the application runs on. Constraint
// violations are translated into gorm.ErrDuplicatedKey so the repositories
// can map them to conflict errors.
func Open(params ConnectionParams) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(params.dsn(params.DBName)), &gorm.Config{
		TranslateError: true,
	})
}

// Migrate creates or updates the schema for all persistence DTOs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&statusrepo.StatusDTO{},
		&historyrepo.EntryDTO{},
	)
}
