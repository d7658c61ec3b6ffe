package blog

import (
	"context"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// Listing is everything a list page renders: one page of posts, the
// navigation menu, and whichever entity the list was filtered by.
type Listing struct {
	Navigation
	Page     Page             `json:"page"`
	Category *models.Category `json:"category,omitempty"`
	Tag      *models.Tag      `json:"tag,omitempty"`
	Author   *models.User     `json:"author,omitempty"`
	Keyword  string           `json:"keyword,omitempty"`
}

// Detail is a single post page with its navigation menu.
type Detail struct {
	Navigation
	Post *models.Post `json:"post"`
}

// IndexPage lists the latest posts.
func (s *Service) IndexPage(ctx context.Context, page int) (*Listing, error) {
	posts, err := s.LatestPosts(ctx)
	if err != nil {
		return nil, err
	}
	return s.listing(ctx, posts, page)
}

// HotPage lists posts by popularity.
func (s *Service) HotPage(ctx context.Context, page int) (*Listing, error) {
	posts, err := s.HotPosts(ctx)
	if err != nil {
		return nil, err
	}
	return s.listing(ctx, posts, page)
}

// CategoryPage lists a category's posts. Category is nil when the id is
// unknown.
func (s *Service) CategoryPage(ctx context.Context, categoryID int64, page int) (*Listing, error) {
	posts, category, err := s.ByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	l, err := s.listing(ctx, posts, page)
	if err != nil {
		return nil, err
	}
	l.Category = category
	return l, nil
}

// TagPage lists a tag's posts. Tag is nil when the id is unknown.
func (s *Service) TagPage(ctx context.Context, tagID int64, page int) (*Listing, error) {
	posts, tag, err := s.ByTag(ctx, tagID)
	if err != nil {
		return nil, err
	}
	l, err := s.listing(ctx, posts, page)
	if err != nil {
		return nil, err
	}
	l.Tag = tag
	return l, nil
}

// AuthorPage lists an owner's posts. Author is nil when the user is unknown.
func (s *Service) AuthorPage(ctx context.Context, ownerID uuid.UUID, page int) (*Listing, error) {
	author, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	if author != nil {
		if posts, err = s.ByAuthor(ctx, author.ID); err != nil {
			return nil, err
		}
	}

	l, err := s.listing(ctx, posts, page)
	if err != nil {
		return nil, err
	}
	l.Author = author
	return l, nil
}

// SearchPage lists the posts matching keyword exactly.
func (s *Service) SearchPage(ctx context.Context, keyword string, page int) (*Listing, error) {
	posts, err := s.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	l, err := s.listing(ctx, posts, page)
	if err != nil {
		return nil, err
	}
	l.Keyword = keyword
	return l, nil
}

// PostPage returns a live post with navigation, or nil if it is not visible.
func (s *Service) PostPage(ctx context.Context, id int64) (*Detail, error) {
	p, err := s.Post(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	nav, err := s.Navs(ctx)
	if err != nil {
		return nil, err
	}
	return &Detail{Navigation: nav, Post: p}, nil
}

func (s *Service) listing(ctx context.Context, posts []models.Post, page int) (*Listing, error) {
	nav, err := s.Navs(ctx)
	if err != nil {
		return nil, err
	}
	return &Listing{
		Navigation: nav,
		Page:       Paginate(posts, page),
	}, nil
}
