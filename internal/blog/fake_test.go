package blog

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// memPosts is an in-memory PostReader honoring every PostFilter field.
type memPosts struct {
	posts []models.Post
	err   error
	calls int
}

func (m *memPosts) List(_ context.Context, f store.PostFilter) ([]models.Post, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	var out []models.Post
	for _, p := range m.posts {
		if len(f.Statuses) > 0 && !hasStatus(f.Statuses, p.Status) {
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

	switch f.Order {
	case store.OrderNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	case store.OrderHottest:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].PV != out[j].PV {
				return out[i].PV > out[j].PV
			}
			return out[i].ID > out[j].ID
		})
	default:
		return nil, errors.New("unknown order")
	}
	return out, nil
}

func (m *memPosts) FindByID(_ context.Context, id int64) (*models.Post, error) {
	for _, p := range m.posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func hasStatus(set []models.Status, s models.Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// memCategories is an in-memory CategoryReader that counts list calls.
type memCategories struct {
	cats      []models.Category
	listCalls int
}

func (m *memCategories) ListByStatus(_ context.Context, status models.Status) ([]models.Category, error) {
	m.listCalls++
	var out []models.Category
	for _, c := range m.cats {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategories) FindByID(_ context.Context, id int64) (*models.Category, error) {
	for _, c := range m.cats {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

type memTags struct{ tags []models.Tag }

func (m *memTags) FindByID(_ context.Context, id int64) (*models.Tag, error) {
	for _, t := range m.tags {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, nil
}

type memUsers struct{ users []models.User }

func (m *memUsers) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

// fixture is a small blog with one post in every status.
type fixture struct {
	svc        *Service
	posts      *memPosts
	categories *memCategories
	alice, bob uuid.UUID
}

func newFixture() *fixture {
	alice, bob := uuid.New(), uuid.New()

	cats := &memCategories{cats: []models.Category{
		{ID: 1, Name: "Go", Status: models.StatusNormal, IsNav: true, OwnerID: alice},
		{ID: 2, Name: "Life", Status: models.StatusNormal, IsNav: false, OwnerID: alice},
		{ID: 3, Name: "Retired", Status: models.StatusDeleted, IsNav: true, OwnerID: alice},
	}}
	tags := &memTags{tags: []models.Tag{
		{ID: 10, Name: "intro", Status: models.StatusNormal, OwnerID: alice},
		{ID: 11, Name: "deep", Status: models.StatusNormal, OwnerID: bob},
	}}
	users := &memUsers{users: []models.User{
		{ID: alice, Username: "alice"},
		{ID: bob, Username: "bob"},
	}}
	posts := &memPosts{posts: []models.Post{
		{ID: 1, Title: "Intro", Desc: "x", Status: models.StatusNormal, CategoryID: 1, TagID: 10, OwnerID: alice, PV: 3},
		{ID: 2, Title: "Introduction", Desc: "y", Status: models.StatusNormal, CategoryID: 1, TagID: 11, OwnerID: bob, PV: 10},
		{ID: 3, Title: "Drafted", Desc: "Intro", Status: models.StatusDraft, CategoryID: 1, TagID: 10, OwnerID: alice, PV: 50},
		{ID: 4, Title: "Gone", Desc: "z", Status: models.StatusDeleted, CategoryID: 2, TagID: 10, OwnerID: bob, PV: 99},
		{ID: 5, Title: "Orphan", Desc: "Intro", Status: models.StatusNormal, CategoryID: 3, TagID: 10, OwnerID: alice, PV: 3},
	}}

	return &fixture{
		svc:        NewService(posts, cats, tags, users),
		posts:      posts,
		categories: cats,
		alice:      alice,
		bob:        bob,
	}
}

func postIDs(posts []models.Post) []int64 {
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func categoryIDs(cats []models.Category) []int64 {
	ids := make([]int64, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids
}
