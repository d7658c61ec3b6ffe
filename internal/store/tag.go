package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// TagStore manages tags in the database.
type TagStore struct {
	db *sql.DB
}

// NewTagStore returns a new TagStore.
func NewTagStore(db *sql.DB) *TagStore {
	return &TagStore{db: db}
}

const tagColumns = `id, name, status, owner_id, created_time`

func scanTag(row scanner) (*models.Tag, error) {
	var t models.Tag
	if err := row.Scan(&t.ID, &t.Name, &t.Status, &t.OwnerID, &t.CreatedTime); err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByID retrieves a tag by ID regardless of status. Returns nil if not found.
func (s *TagStore) FindByID(ctx context.Context, id int64) (*models.Tag, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+tagColumns+` FROM tags WHERE id = $1`, id)
	t, err := scanTag(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag by id: %w", err)
	}
	return t, nil
}

// ListByOwner returns all of an owner's tags regardless of status, newest first.
func (s *TagStore) ListByOwner(ctx context.Context, owner uuid.UUID) ([]models.Tag, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE owner_id = $1 ORDER BY id DESC`, owner)
	if err != nil {
		return nil, fmt.Errorf("list owner tags: %w", err)
	}
	defer rows.Close()

	var items []models.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// Create inserts a new tag owned by t.OwnerID and returns it.
func (s *TagStore) Create(ctx context.Context, t *models.Tag) (*models.Tag, error) {
	if !t.Status.ValidFor(models.KindTag) {
		return nil, fmt.Errorf("create tag: %w: %s", models.ErrInvalidStatus, t.Status)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO tags (name, status, owner_id)
		VALUES ($1, $2, $3)
		RETURNING `+tagColumns,
		t.Name, t.Status, t.OwnerID,
	)
	result, err := scanTag(row)
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return result, nil
}

// SetStatus changes a tag's status, scoped to its owner.
func (s *TagStore) SetStatus(ctx context.Context, owner uuid.UUID, id int64, status models.Status) error {
	return setStatus(ctx, s.db, "tags", models.KindTag, owner, id, status)
}
