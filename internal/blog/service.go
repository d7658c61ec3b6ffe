// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog derives the public result sets of the site: latest and hot
// posts, category, tag and author listings, keyword search and the
// navigation menu. Only posts with status normal are ever returned.
//
// A live post stays visible even when its category or tag has been
// deleted; status is checked on the post alone.
package blog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// PostReader is the post storage the service queries.
type PostReader interface {
	List(ctx context.Context, f store.PostFilter) ([]models.Post, error)
	FindByID(ctx context.Context, id int64) (*models.Post, error)
}

// CategoryReader is the category storage the service queries.
type CategoryReader interface {
	ListByStatus(ctx context.Context, status models.Status) ([]models.Category, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
}

// TagReader is the tag storage the service queries.
type TagReader interface {
	FindByID(ctx context.Context, id int64) (*models.Tag, error)
}

// UserReader resolves post owners for author pages.
type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service answers read-only queries over the blog content. It keeps no
// state between calls and is safe for concurrent use.
type Service struct {
	posts      PostReader
	categories CategoryReader
	tags       TagReader
	users      UserReader
}

// NewService creates a Service over the given stores.
func NewService(posts PostReader, categories CategoryReader, tags TagReader, users UserReader) *Service {
	return &Service{
		posts:      posts,
		categories: categories,
		tags:       tags,
		users:      users,
	}
}

// liveFilter restricts a listing to publicly visible posts.
func liveFilter() store.PostFilter {
	return store.PostFilter{Statuses: []models.Status{models.StatusNormal}}
}

// LatestPosts returns all live posts, newest first.
func (s *Service) LatestPosts(ctx context.Context) ([]models.Post, error) {
	return s.list(ctx, liveFilter())
}

// HotPosts returns all live posts ordered by page views, newest first on ties.
func (s *Service) HotPosts(ctx context.Context) ([]models.Post, error) {
	f := liveFilter()
	f.Order = store.OrderHottest
	return s.list(ctx, f)
}

// ByCategory returns the live posts filed under a category together with
// the category. An unknown id is not an error: both results are nil.
func (s *Service) ByCategory(ctx context.Context, categoryID int64) ([]models.Post, *models.Category, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, nil
	}

	f := liveFilter()
	f.CategoryID = category.ID
	posts, err := s.list(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	return posts, category, nil
}

// ByTag returns the live posts carrying a tag together with the tag.
// An unknown id yields nil results and no error.
func (s *Service) ByTag(ctx context.Context, tagID int64) ([]models.Post, *models.Tag, error) {
	tag, err := s.tags.FindByID(ctx, tagID)
	if err != nil {
		return nil, nil, err
	}
	if tag == nil {
		return nil, nil, nil
	}

	f := liveFilter()
	f.TagID = tag.ID
	posts, err := s.list(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	return posts, tag, nil
}

// ByAuthor returns the live posts owned by the given user.
func (s *Service) ByAuthor(ctx context.Context, ownerID uuid.UUID) ([]models.Post, error) {
	if ownerID == uuid.Nil {
		return nil, nil
	}
	f := liveFilter()
	f.OwnerID = ownerID
	return s.list(ctx, f)
}

// Search returns live posts whose title or desc equals keyword exactly.
// Substrings do not match. An empty keyword returns every live post.
func (s *Service) Search(ctx context.Context, keyword string) ([]models.Post, error) {
	f := liveFilter()
	if keyword != "" {
		f.Keyword = &keyword
	}
	return s.list(ctx, f)
}

// Post returns a single live post, or nil when it does not exist or is
// not publicly visible.
func (s *Service) Post(ctx context.Context, id int64) (*models.Post, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsLive() {
		return nil, nil
	}
	return p, nil
}

// list runs a filtered query and drops anything that is not live, so a
// store that ignores the status filter still cannot leak drafts.
func (s *Service) list(ctx context.Context, f store.PostFilter) ([]models.Post, error) {
	posts, err := s.posts.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("blog query: %w", err)
	}

	live := posts[:0]
	for _, p := range posts {
		if p.IsLive() {
			live = append(live, p)
		}
	}
	return live, nil
}
