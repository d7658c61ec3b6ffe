// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, status, is_nav, owner_id, created_time`

// scanCategory scans a row into a Category struct.
func scanCategory(row scanner) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Status, &c.IsNav, &c.OwnerID, &c.CreatedTime)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByStatus returns every category with the given status, ordered by id.
// Navigation derivation relies on this being a single round-trip.
func (s *CategoryStore) ListByStatus(ctx context.Context, status models.Status) ([]models.Category, error) {
	if !status.ValidFor(models.KindCategory) {
		return nil, fmt.Errorf("list categories: %w: %s", models.ErrInvalidStatus, status)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE status = $1 ORDER BY id`, status)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// ListByOwner returns all of an owner's categories regardless of status,
// with the number of posts filed under each.
func (s *CategoryStore) ListByOwner(ctx context.Context, owner uuid.UUID) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.status, c.is_nav, c.owner_id, c.created_time,
		       COUNT(p.id) AS post_count
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		WHERE c.owner_id = $1
		GROUP BY c.id
		ORDER BY c.id DESC
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("list owner categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Status, &c.IsNav, &c.OwnerID, &c.CreatedTime,
			&c.PostCount,
		); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID regardless of status. Returns nil if
// not found.
func (s *CategoryStore) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new category owned by c.OwnerID and returns it.
func (s *CategoryStore) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	if !c.Status.ValidFor(models.KindCategory) {
		return nil, fmt.Errorf("create category: %w: %s", models.ErrInvalidStatus, c.Status)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, status, is_nav, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+categoryColumns,
		c.Name, c.Status, c.IsNav, c.OwnerID,
	)
	result, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// SetStatus changes a category's status. Only the owner may do so; a
// category owned by someone else reports ErrNotFound.
func (s *CategoryStore) SetStatus(ctx context.Context, owner uuid.UUID, id int64, status models.Status) error {
	return setStatus(ctx, s.db, "categories", models.KindCategory, owner, id, status)
}
