// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"extstore/internal/models"
)

// Store is the Postgres-backed Catalog adapter.
type Store struct {
	db *sql.DB
}

// New returns a Store over the given connection pool.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const extensionColumns = `id, name, description, category_id, icon, rating, users, created_at`
const categoryColumns = `id, name, created_at`

// scanExtension scans a row into an Extension struct.
func scanExtension(scanner interface{ Scan(...any) error }) (*models.Extension, error) {
	var e models.Extension
	err := scanner.Scan(
		&e.ID, &e.Name, &e.Description, &e.CategoryID,
		&e.Icon, &e.Rating, &e.Users, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// collectExtensions drains rows into a slice.
func collectExtensions(rows *sql.Rows) ([]models.Extension, error) {
	defer rows.Close()

	var items []models.Extension
	for rows.Next() {
		e, err := scanExtension(rows)
		if err != nil {
			return nil, fmt.Errorf("scan extension: %w", err)
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

// ListExtensions returns every extension ordered by id.
func (s *Store) ListExtensions() ([]models.Extension, error) {
	rows, err := s.db.Query(`SELECT ` + extensionColumns + ` FROM extensions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list extensions: %w", err)
	}
	return collectExtensions(rows)
}

// ListExtensionsPaged returns one page of extensions ordered by
// ascending id. A short or empty page means the listing is exhausted.
func (s *Store) ListExtensionsPaged(page, limit int) ([]models.Extension, error) {
	page, limit = clampPage(page, limit)
	rows, err := s.db.Query(`
		SELECT `+extensionColumns+`
		FROM extensions
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, page*limit)
	if err != nil {
		return nil, fmt.Errorf("list extensions paged: %w", err)
	}
	return collectExtensions(rows)
}

// ListByCategory returns all extensions in a category ordered by id. An
// unknown category yields an empty result, not an error.
func (s *Store) ListByCategory(categoryID int64) ([]models.Extension, error) {
	rows, err := s.db.Query(`
		SELECT `+extensionColumns+`
		FROM extensions
		WHERE category_id = $1
		ORDER BY id
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list extensions by category: %w", err)
	}
	return collectExtensions(rows)
}

// ListByCategoryPaged pages through one category with the same ordering
// and offset semantics as ListExtensionsPaged.
func (s *Store) ListByCategoryPaged(categoryID int64, page, limit int) ([]models.Extension, error) {
	page, limit = clampPage(page, limit)
	rows, err := s.db.Query(`
		SELECT `+extensionColumns+`
		FROM extensions
		WHERE category_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, categoryID, limit, page*limit)
	if err != nil {
		return nil, fmt.Errorf("list extensions by category paged: %w", err)
	}
	return collectExtensions(rows)
}

// SearchExtensions matches the query case-insensitively as a substring
// of name or description. Results are capped at MaxPageSize and ordered
// by id, so repeated searches over an unchanged data set return
// identical results. Blank queries are a caller precondition violation
// and never reach this method.
func (s *Store) SearchExtensions(query string) ([]models.Extension, error) {
	pattern := "%" + escapeLike(query) + "%"
	rows, err := s.db.Query(`
		SELECT `+extensionColumns+`
		FROM extensions
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY id
		LIMIT $2
	`, pattern, MaxPageSize)
	if err != nil {
		return nil, fmt.Errorf("search extensions: %w", err)
	}
	return collectExtensions(rows)
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ListCategories returns all categories ordered by id.
func (s *Store) ListCategories() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT ` + categoryColumns + ` FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindExtensionByID retrieves an extension by id. Returns nil if not found.
func (s *Store) FindExtensionByID(id int64) (*models.Extension, error) {
	row := s.db.QueryRow(`SELECT `+extensionColumns+` FROM extensions WHERE id = $1`, id)
	e, err := scanExtension(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find extension by id: %w", err)
	}
	return e, nil
}

// FindCategoryByID retrieves a category by id. Returns nil if not found.
func (s *Store) FindCategoryByID(id int64) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return &c, nil
}

// CreateExtension inserts a new extension and returns it with the
// generated id and timestamp. A draft referencing a missing category
// fails with ErrInvalidReference (foreign key enforcement).
func (s *Store) CreateExtension(draft *models.ExtensionDraft) (*models.Extension, error) {
	row := s.db.QueryRow(`
		INSERT INTO extensions (name, description, category_id, icon, rating, users)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+extensionColumns,
		draft.Name, draft.Description, draft.CategoryID,
		draft.Icon, draft.Rating, draft.Users,
	)
	e, err := scanExtension(row)
	if err != nil {
		return nil, fmt.Errorf("create extension: %w", constraintError(err))
	}
	return e, nil
}

// CreateCategory inserts a new category and returns it. Duplicate names
// fail with ErrDuplicateName (unique constraint enforcement).
func (s *Store) CreateCategory(draft *models.CategoryDraft) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(`
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING `+categoryColumns,
		draft.Name,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", constraintError(err))
	}
	return &c, nil
}

// Postgres error codes for constraint violations.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// constraintError maps Postgres constraint violations onto the store's
// sentinel errors so callers need not know driver internals.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ErrInvalidReference
		case pgUniqueViolation:
			return ErrDuplicateName
		}
	}
	return err
}
