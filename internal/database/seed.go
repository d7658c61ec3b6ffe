package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

// demoPosts is how many placeholder posts a fresh database gets.
const demoPosts = 7

// Seed populates the database with initial development data: a default
// owner account with one navigation category, one tag and a handful of
// placeholder posts. It is a no-op when any user already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	var ownerID string
	err = tx.QueryRow(`
		INSERT INTO users (username, display_name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "admin", "Admin", string(hash)).Scan(&ownerID)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	var categoryID, tagID int64
	if err := tx.QueryRow(`
		INSERT INTO categories (name, status, is_nav, owner_id) VALUES ($1, 1, TRUE, $2)
		RETURNING id
	`, "Notes", ownerID).Scan(&categoryID); err != nil {
		return fmt.Errorf("seed insert category: %w", err)
	}

	if err := tx.QueryRow(`
		INSERT INTO tags (name, status, owner_id) VALUES ($1, 1, $2)
		RETURNING id
	`, "general", ownerID).Scan(&tagID); err != nil {
		return fmt.Errorf("seed insert tag: %w", err)
	}

	// Enough posts to fill more than one listing page.
	for i := 0; i < demoPosts; i++ {
		if _, err := tx.Exec(`
			INSERT INTO posts (title, "desc", content, status, category_id, tag_id, owner_id)
			VALUES ($1, $2, $3, 1, $4, $5, $6)
		`, gofakeit.Sentence(5), gofakeit.Sentence(12), gofakeit.Paragraph(3, 4, 12, "\n\n"),
			categoryID, tagID, ownerID); err != nil {
			return fmt.Errorf("seed insert post: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with default owner",
		"username", "admin",
		"password", "admin",
		"posts", demoPosts,
	)
	return nil
}
