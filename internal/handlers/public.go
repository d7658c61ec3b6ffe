// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the read-only JSON surface of the blog.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/blog"
	"inkwell/internal/cache"
	"inkwell/internal/middleware"
)

// Public groups the public blog handlers. Listings are looked up in the
// Valkey page cache first and stored there on a miss. Post pages are never
// cached because every hit is counted.
type Public struct {
	blog      *blog.Service
	views     *blog.ViewRecorder
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group. views and pageCache may be
// nil, which disables view counting and response caching.
func NewPublic(svc *blog.Service, views *blog.ViewRecorder, pageCache *cache.PageCache) *Public {
	return &Public{
		blog:      svc,
		views:     views,
		pageCache: pageCache,
	}
}

// loader fetches a response body. found is false when the requested entity
// does not exist.
type loader func(ctx context.Context) (v any, found bool, err error)

// Index lists the latest posts.
func (p *Public) Index(w http.ResponseWriter, r *http.Request) {
	page := pageNumber(r.URL.Query().Get("page"))
	p.serveCached(w, r, listingKey("/", page, nil), func(ctx context.Context) (any, bool, error) {
		l, err := p.blog.IndexPage(ctx, page)
		return l, true, err
	})
}

// Hot lists posts by page views.
func (p *Public) Hot(w http.ResponseWriter, r *http.Request) {
	page := pageNumber(r.URL.Query().Get("page"))
	p.serveCached(w, r, listingKey("/hot", page, nil), func(ctx context.Context) (any, bool, error) {
		l, err := p.blog.HotPage(ctx, page)
		return l, true, err
	})
}

// Navs returns the navigation menu alone.
func (p *Public) Navs(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, cache.ListingKey("/navs", ""), func(ctx context.Context) (any, bool, error) {
		nav, err := p.blog.Navs(ctx)
		return nav, true, err
	})
}

// Category lists the live posts of one category.
func (p *Public) Category(w http.ResponseWriter, r *http.Request) {
	id, msg := validateID(chi.URLParam(r, "id"))
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	page := pageNumber(r.URL.Query().Get("page"))
	key := listingKey("/category/"+strconv.FormatInt(id, 10), page, nil)
	p.serveCached(w, r, key, func(ctx context.Context) (any, bool, error) {
		l, err := p.blog.CategoryPage(ctx, id, page)
		if err != nil {
			return nil, false, err
		}
		return l, l.Category != nil, nil
	})
}

// Tag lists the live posts of one tag.
func (p *Public) Tag(w http.ResponseWriter, r *http.Request) {
	id, msg := validateID(chi.URLParam(r, "id"))
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	page := pageNumber(r.URL.Query().Get("page"))
	key := listingKey("/tag/"+strconv.FormatInt(id, 10), page, nil)
	p.serveCached(w, r, key, func(ctx context.Context) (any, bool, error) {
		l, err := p.blog.TagPage(ctx, id, page)
		if err != nil {
			return nil, false, err
		}
		return l, l.Tag != nil, nil
	})
}

// Author lists the live posts of one owner. An unknown owner is an empty
// listing without an author, not a missing page.
func (p *Public) Author(w http.ResponseWriter, r *http.Request) {
	owner, msg := validateAuthor(chi.URLParam(r, "id"))
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	page := pageNumber(r.URL.Query().Get("page"))
	p.serveCached(w, r, listingKey("/author/"+owner.String(), page, nil), func(ctx context.Context) (any, bool, error) {
		l, err := p.blog.AuthorPage(ctx, owner, page)
		return l, true, err
	})
}

// Search lists posts whose title or description equals the keyword.
func (p *Public) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	keyword := q.Get("keyword")
	if msg := validateKeyword(keyword); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	page := pageNumber(q.Get("page"))
	key := listingKey("/search", page, url.Values{"keyword": {keyword}})
	p.serveCached(w, r, key, func(ctx context.Context) (any, bool, error) {
		l, err := p.blog.SearchPage(ctx, keyword, page)
		return l, true, err
	})
}

// Post returns one live post and counts the view.
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	id, msg := validateID(chi.URLParam(r, "id"))
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	ctx := r.Context()
	detail, err := p.blog.PostPage(ctx, id)
	if err != nil {
		slog.Error("load post failed", "error", err, "post_id", id)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if detail == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	if p.views != nil {
		if err := p.views.Record(ctx, id, middleware.ClientIP(r)); err != nil {
			// The post is still served; only the counters are lost.
			slog.Error("record post view failed", "error", err, "post_id", id)
		}
	}

	writeJSON(w, http.StatusOK, detail)
}

// listingKey builds the cache key from parsed parameters rather than the raw
// URL. Unknown query values and unparsable pages map to the same entry.
func listingKey(route string, page int, params url.Values) string {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(page))
	return cache.ListingKey(route, q.Encode())
}

// serveCached answers from the page cache when possible, otherwise runs
// load and caches a successful body under key. Not-found answers are not
// cached.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, key string, load loader) {
	ctx := r.Context()

	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, key); ok {
			writeBody(w, http.StatusOK, cached)
			return
		}
	}

	v, found, err := load(ctx)
	if err != nil {
		slog.Error("load listing failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode listing failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if p.pageCache != nil {
		p.pageCache.Set(ctx, key, body)
	}
	writeBody(w, http.StatusOK, body)
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode response failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeBody(w, status, body)
}

// writeError sends {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	writeBody(w, status, body)
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
