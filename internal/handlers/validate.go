package handlers

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Validation limits for request parameters.
const (
	maxKeywordLen = 1_024
	maxPageLen    = 9
)

// validateID parses a path id and returns the first error found.
func validateID(raw string) (int64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, "ID is required."
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, "ID must be a positive integer."
	}
	return id, ""
}

// validateAuthor parses an author id.
func validateAuthor(raw string) (uuid.UUID, string) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, "Author ID must be a UUID."
	}
	return id, ""
}

// validateKeyword checks a search keyword. An empty keyword is allowed and
// lists every post. PostgreSQL text cannot hold NUL or invalid UTF-8.
func validateKeyword(keyword string) string {
	if !utf8.ValidString(keyword) {
		return "Keyword must be valid UTF-8."
	}
	if strings.ContainsRune(keyword, 0) {
		return "Keyword must not contain NUL characters."
	}
	if utf8.RuneCountInString(keyword) > maxKeywordLen {
		return "Keyword is too long (max 1,024 characters)."
	}
	return ""
}

// pageNumber reads the page query value. Anything that is not a number
// falls back to the first page; out-of-range numbers are clamped later.
func pageNumber(raw string) int {
	if raw == "" || len(raw) > maxPageLen {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
