// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidStatus is returned when a status value is outside the known set,
// or not allowed for the entity it is applied to.
var ErrInvalidStatus = errors.New("invalid status")

// Status is the lifecycle flag shared by categories, tags and posts.
// The numeric values match the legacy column encoding.
type Status int16

const (
	StatusDeleted Status = 0
	StatusNormal  Status = 1
	StatusDraft   Status = 2 // posts only
)

// Kind identifies which entity a status is attached to.
type Kind string

const (
	KindCategory Kind = "category"
	KindTag      Kind = "tag"
	KindPost     Kind = "post"
)

// ParseStatus converts the textual form ("normal", "deleted", "draft").
func ParseStatus(s string) (Status, error) {
	switch s {
	case "normal":
		return StatusNormal, nil
	case "deleted":
		return StatusDeleted, nil
	case "draft":
		return StatusDraft, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusDeleted:
		return "deleted"
	case StatusDraft:
		return "draft"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusNormal, StatusDeleted, StatusDraft:
		return true
	}
	return false
}

// ValidFor reports whether s may be stored on an entity of kind k.
// Categories and tags have no draft state.
func (s Status) ValidFor(k Kind) bool {
	switch k {
	case KindCategory, KindTag:
		return s == StatusNormal || s == StatusDeleted
	case KindPost:
		return s.Valid()
	}
	return false
}

// IsLive reports whether a record with this status is publicly visible.
func (s Status) IsLive() bool {
	switch s {
	case StatusNormal:
		return true
	case StatusDeleted, StatusDraft:
		return false
	}
	return false
}

// Value implements driver.Valuer. Unknown values never reach the database.
func (s Status) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return int64(s), nil
}

// Scan implements sql.Scanner and rejects values outside the known set.
func (s *Status) Scan(src any) error {
	var n int64
	switch v := src.(type) {
	case int64:
		n = v
	case int32:
		n = int64(v)
	case int16:
		n = int64(v)
	case int:
		n = int64(v)
	case []byte:
		parsed, err := strconv.ParseInt(string(v), 10, 16)
		if err != nil {
			return fmt.Errorf("scan status: %w", err)
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(v, 10, 16)
		if err != nil {
			return fmt.Errorf("scan status: %w", err)
		}
		n = parsed
	default:
		return fmt.Errorf("scan status: unsupported type %T", src)
	}

	st := Status(n)
	if !st.Valid() {
		return fmt.Errorf("scan status: %w: %d", ErrInvalidStatus, n)
	}
	*s = st
	return nil
}

// MarshalText encodes the status by name so JSON payloads read "normal"
// rather than a bare integer.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(b []byte) error {
	st, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
