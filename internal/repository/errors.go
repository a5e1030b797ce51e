package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDuplicateKey is returned when an insert/update violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

	// ErrSlotTaken is returned by a conditional booking insert that found an
	// overlapping confirmed booking inside its transaction.
	ErrSlotTaken = errors.New("slot overlaps a confirmed booking")
)

// ListFilters is shared by the catalog listings.
type ListFilters struct {
	Limit         int
	Offset        int
	SortBy        string
	Desc          bool
	ActiveOnly    bool
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Query         string
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isDuplicateKey(err):
		return errors.Join(ErrDuplicateKey, err)
	default:
		return err
	}
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}

var sortColumns = map[string]string{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"updated_at": "updated_at",
	"name":       "name",
}

func orderClause(table string, f ListFilters) string {
	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}
	return table + "." + col + " " + dir
}

func likePattern(q string) string {
	return "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
}
