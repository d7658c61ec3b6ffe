// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog article. Content is Markdown by convention; the core
// stores it verbatim.
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Desc        string    `json:"desc"`
	Content     string    `json:"content"`
	Status      Status    `json:"status"`
	CategoryID  int64     `json:"category_id"`
	TagID       int64     `json:"tag_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedTime time.Time `json:"created_time"`
	PV          int64     `json:"pv"`
	UV          int64     `json:"uv"`

	// Virtual fields resolved by the store's joins.
	CategoryName string `json:"category_name,omitempty"`
	TagName      string `json:"tag_name,omitempty"`
	OwnerName    string `json:"owner_name,omitempty"`
}

// IsLive reports whether the post is publicly visible.
func (p *Post) IsLive() bool {
	return p.Status.IsLive()
}
