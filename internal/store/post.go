// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// PostOrder selects the ordering of a post listing.
type PostOrder int

const (
	// OrderNewest sorts by id descending, the default post ordering.
	OrderNewest PostOrder = iota
	// OrderHottest sorts by page views descending, newest first on ties.
	OrderHottest
)

// PostFilter describes which posts a listing returns. Zero values mean
// "no constraint" for every field.
type PostFilter struct {
	Statuses   []models.Status
	CategoryID int64
	TagID      int64
	OwnerID    uuid.UUID
	// Keyword matches title or desc exactly, not as a substring.
	Keyword *string
	Order   PostOrder
	Limit   int
	Offset  int
}

// PostStore handles all post-related database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// postSelect resolves category, tag and owner names in the same query so
// listings never issue per-row lookups.
const postSelect = `
	SELECT p.id, p.title, p."desc", p.content, p.status, p.category_id, p.tag_id,
	       p.owner_id, p.created_time, p.pv, p.uv,
	       c.name, t.name, COALESCE(NULLIF(u.display_name, ''), u.username)
	FROM posts p
	JOIN categories c ON c.id = p.category_id
	JOIN tags t ON t.id = p.tag_id
	JOIN users u ON u.id = p.owner_id`

const postColumns = `id, title, "desc", content, status, category_id, tag_id, owner_id, created_time, pv, uv`

func scanPost(row scanner) (*models.Post, error) {
	var p models.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Desc, &p.Content, &p.Status, &p.CategoryID, &p.TagID,
		&p.OwnerID, &p.CreatedTime, &p.PV, &p.UV,
		&p.CategoryName, &p.TagName, &p.OwnerName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// buildQuery renders the filter into SQL and positional arguments.
func (f PostFilter) buildQuery() (string, []any, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if len(f.Statuses) > 0 {
		marks := make([]string, 0, len(f.Statuses))
		for _, st := range f.Statuses {
			if !st.ValidFor(models.KindPost) {
				return "", nil, fmt.Errorf("%w: %s", models.ErrInvalidStatus, st)
			}
			marks = append(marks, arg(st))
		}
		where = append(where, "p.status IN ("+strings.Join(marks, ", ")+")")
	}
	if f.CategoryID != 0 {
		where = append(where, "p.category_id = "+arg(f.CategoryID))
	}
	if f.TagID != 0 {
		where = append(where, "p.tag_id = "+arg(f.TagID))
	}
	if f.OwnerID != uuid.Nil {
		where = append(where, "p.owner_id = "+arg(f.OwnerID))
	}
	if f.Keyword != nil {
		kw := arg(*f.Keyword)
		where = append(where, `(p.title = `+kw+` OR p."desc" = `+kw+`)`)
	}

	var b strings.Builder
	b.WriteString(postSelect)
	if len(where) > 0 {
		b.WriteString("\n\tWHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}

	switch f.Order {
	case OrderNewest:
		b.WriteString("\n\tORDER BY p.id DESC")
	case OrderHottest:
		b.WriteString("\n\tORDER BY p.pv DESC, p.id DESC")
	default:
		return "", nil, fmt.Errorf("unknown post order %d", f.Order)
	}

	if f.Limit > 0 {
		b.WriteString("\n\tLIMIT " + arg(f.Limit))
	}
	if f.Offset > 0 {
		b.WriteString("\n\tOFFSET " + arg(f.Offset))
	}
	return b.String(), args, nil
}

// List returns the posts matching f.
func (s *PostStore) List(ctx context.Context, f PostFilter) ([]models.Post, error) {
	query, args, err := f.buildQuery()
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// ListByOwner returns every post the owner has written in any status,
// newest first. A non-zero categoryID narrows the list to that category.
func (s *PostStore) ListByOwner(ctx context.Context, owner uuid.UUID, categoryID int64) ([]models.Post, error) {
	if owner == uuid.Nil {
		return nil, nil
	}
	return s.List(ctx, PostFilter{OwnerID: owner, CategoryID: categoryID})
}

// FindByID retrieves a post by ID regardless of status. Returns nil if not found.
func (s *PostStore) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, postSelect+"\n\tWHERE p.id = $1", id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// Create inserts a new post owned by p.OwnerID and returns it. The joined
// name fields are left empty on the result.
func (s *PostStore) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	if !p.Status.ValidFor(models.KindPost) {
		return nil, fmt.Errorf("create post: %w: %s", models.ErrInvalidStatus, p.Status)
	}

	result := &models.Post{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, "desc", content, status, category_id, tag_id, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+postColumns,
		p.Title, p.Desc, p.Content, p.Status, p.CategoryID, p.TagID, p.OwnerID,
	).Scan(
		&result.ID, &result.Title, &result.Desc, &result.Content, &result.Status,
		&result.CategoryID, &result.TagID, &result.OwnerID, &result.CreatedTime,
		&result.PV, &result.UV,
	)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return result, nil
}

// SetStatus moves a post between normal, draft and deleted. Any transition
// is allowed; only ownership is checked.
func (s *PostStore) SetStatus(ctx context.Context, owner uuid.UUID, id int64, status models.Status) error {
	return setStatus(ctx, s.db, "posts", models.KindPost, owner, id, status)
}

// RecordView bumps the page-view counter, and the unique-visitor counter
// when the viewer has not been seen before.
func (s *PostStore) RecordView(ctx context.Context, id int64, unique bool) error {
	var uv int64
	if unique {
		uv = 1
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE posts SET pv = pv + 1, uv = uv + $1 WHERE id = $2`, uv, id,
	); err != nil {
		return fmt.Errorf("record post view: %w", err)
	}
	return nil
}
