package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates an empty database with a starter catalog for development.
// Existing data is never touched.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM extensions").Scan(&count); err != nil {
		return fmt.Errorf("seed check extensions: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	categories := []string{"Security", "Productivity", "Development"}
	categoryIDs := make(map[string]int64, len(categories))
	for _, name := range categories {
		var id int64
		err := db.QueryRow(`
			INSERT INTO categories (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, name).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert category %q: %w", name, err)
		}
		categoryIDs[name] = id
	}

	extensions := []struct {
		name, description, category, icon, rating, users string
	}{
		{
			"Privacy Guardian",
			"Enhanced privacy protection and tracker blocking for everyday browsing",
			"Security", "shield", "4.50", "100K+",
		},
		{
			"Tab Manager Pro",
			"Efficient tab organization, grouping, and session management",
			"Productivity", "layers", "4.80", "50K+",
		},
		{
			"Dev Inspector",
			"Inspect page scripts, storage, and network activity while developing",
			"Development", "code", "4.30", "25K+",
		},
	}

	for _, e := range extensions {
		_, err := db.Exec(`
			INSERT INTO extensions (name, description, category_id, icon, rating, users)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, e.name, e.description, categoryIDs[e.category], e.icon, e.rating, e.users)
		if err != nil {
			return fmt.Errorf("seed insert extension %q: %w", e.name, err)
		}
	}

	slog.Info("database seeded with starter catalog",
		"categories", len(categories),
		"extensions", len(extensions),
	)

	return nil
}
