// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups posts. Every post belongs to exactly one category.
// Categories flagged IsNav are shown in the site navigation menu.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Status      Status    `json:"status"`
	IsNav       bool      `json:"is_nav"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedTime time.Time `json:"created_time"`

	// Virtual field populated by owner listings.
	PostCount int `json:"post_count,omitempty"`
}

// Tag labels posts. A post carries a single tag.
type Tag struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Status      Status    `json:"status"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedTime time.Time `json:"created_time"`
}
