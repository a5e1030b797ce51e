package database

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"restomenu/internal/domain"
	"restomenu/internal/repository"
)

func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Info().Msg("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Info().Str("dsn", dsn).Msg("using SQLite")

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
	if err != nil {
		return nil, err
	}

	// One connection: keeps ":memory:" a single database and serialises writers.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates the schema, including the partial unique index that rejects
// a second CONFIRMED booking of the exact same (item, date, start, end).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Category{},
		&domain.Subcategory{},
		&domain.Item{},
		&repository.BookingModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_confirmed_slot
ON bookings (item_id, date, start_time, end_time)
WHERE status = 'CONFIRMED'`).Error
	if err != nil {
		return fmt.Errorf("create booking slot index: %w", err)
	}
	return nil
}
