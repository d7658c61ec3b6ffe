// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests:
// in-memory stores behind blog.Service and a miniredis-backed page cache.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"inkwell/internal/blog"
	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/store"
)

type memStore struct {
	mu    sync.Mutex
	posts []models.Post
	cats  []models.Category
	tags  []models.Tag
	users []models.User
	err   error
	lists int
	views map[int64][2]int64 // pv, uv increments
}

type postReader struct{ *memStore }

func (m postReader) List(_ context.Context, f store.PostFilter) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.err != nil {
		return nil, m.err
	}

	var out []models.Post
	for _, p := range m.posts {
		if len(f.Statuses) > 0 && !containsStatus(f.Statuses, p.Status) {
			continue
		}
		if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
			continue
		}
		if f.TagID != 0 && p.TagID != f.TagID {
			continue
		}
		if f.OwnerID != uuid.Nil && p.OwnerID != f.OwnerID {
			continue
		}
		if f.Keyword != nil && p.Title != *f.Keyword && p.Desc != *f.Keyword {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if f.Order == store.OrderHottest && out[i].PV != out[j].PV {
			return out[i].PV > out[j].PV
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m postReader) FindByID(_ context.Context, id int64) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (m postReader) RecordView(_ context.Context, id int64, unique bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.views[id]
	v[0]++
	if unique {
		v[1]++
	}
	m.views[id] = v
	return nil
}

type categoryReader struct{ *memStore }

func (m categoryReader) ListByStatus(_ context.Context, status models.Status) ([]models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Category
	for _, c := range m.cats {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m categoryReader) FindByID(_ context.Context, id int64) (*models.Category, error) {
	for _, c := range m.cats {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

type tagReader struct{ *memStore }

func (m tagReader) FindByID(_ context.Context, id int64) (*models.Tag, error) {
	for _, t := range m.tags {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, nil
}

type userReader struct{ *memStore }

func (m userReader) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

func containsStatus(set []models.Status, s models.Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// testEnv holds all dependencies for handler tests.
type testEnv struct {
	Store  *memStore
	Valkey *miniredis.Miniredis
	Public *Public
	Author uuid.UUID
}

// newTestEnv creates a blog with one nav category, one plain category, a
// deleted category and seven posts, two of them hidden.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	author := uuid.New()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ms := &memStore{
		cats: []models.Category{
			{ID: 1, Name: "Go", Status: models.StatusNormal, IsNav: true, OwnerID: author},
			{ID: 2, Name: "Life", Status: models.StatusNormal, OwnerID: author},
			{ID: 3, Name: "Old", Status: models.StatusDeleted, IsNav: true, OwnerID: author},
		},
		tags: []models.Tag{
			{ID: 1, Name: "intro", Status: models.StatusNormal, OwnerID: author},
		},
		users: []models.User{
			{ID: author, Username: "admin", DisplayName: "Admin"},
		},
		views: make(map[int64][2]int64),
	}
	for i := int64(1); i <= 7; i++ {
		status := models.StatusNormal
		switch i {
		case 6:
			status = models.StatusDraft
		case 7:
			status = models.StatusDeleted
		}
		ms.posts = append(ms.posts, models.Post{
			ID: i, Title: "Post " + strconv.FormatInt(i, 10), Desc: "d", Status: status,
			CategoryID: 1, TagID: 1, OwnerID: author, CreatedTime: now, PV: i, UV: 1,
		})
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := blog.NewService(postReader{ms}, categoryReader{ms}, tagReader{ms}, userReader{ms})
	views := blog.NewViewRecorder(postReader{ms}, cache.NewVisitorCounter(client, 0))
	public := NewPublic(svc, views, cache.NewPageCache(client, time.Minute))

	return &testEnv{Store: ms, Valkey: mr, Public: public, Author: author}
}

var errStorage = errors.New("storage down")

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
