// Package store provides database access methods for the blog entities.
// Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// ErrNotFound is returned by owner-scoped mutations that match no row,
// either because the record does not exist or belongs to another owner.
var ErrNotFound = errors.New("record not found")

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// setStatus changes the status of a row in table, scoped to its owner.
// table is always a package constant, never caller input.
func setStatus(ctx context.Context, db *sql.DB, table string, kind models.Kind, owner uuid.UUID, id int64, status models.Status) error {
	if !status.ValidFor(kind) {
		return fmt.Errorf("set %s status: %w: %s", kind, models.ErrInvalidStatus, status)
	}

	res, err := db.ExecContext(ctx,
		`UPDATE `+table+` SET status = $1 WHERE id = $2 AND owner_id = $3`,
		status, id, owner,
	)
	if err != nil {
		return fmt.Errorf("set %s status: %w", kind, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set %s status: %w", kind, err)
	}
	if n == 0 {
		return fmt.Errorf("set %s status %d: %w", kind, id, ErrNotFound)
	}
	return nil
}
