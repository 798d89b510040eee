// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"extstore/internal/models"
)

// Memory is an in-memory Catalog used by handler and property tests. It
// mirrors the Postgres adapter's observable semantics: ascending-id
// ordering, offset pagination capped at MaxPageSize, case-insensitive
// substring search, and constraint enforcement on inserts.
type Memory struct {
	mu         sync.Mutex
	extensions []models.Extension
	categories []models.Category
	nextExtID  int64
	nextCatID  int64
}

// NewMemory returns an empty in-memory catalog.
func NewMemory() *Memory {
	return &Memory{nextExtID: 1, nextCatID: 1}
}

// ListExtensions returns every extension ordered by id.
func (m *Memory) ListExtensions() ([]models.Extension, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Extension(nil), m.extensions...), nil
}

// ListExtensionsPaged returns one page of extensions ordered by id.
func (m *Memory) ListExtensionsPaged(page, limit int) ([]models.Extension, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pageOf(m.extensions, page, limit), nil
}

// ListByCategory returns all extensions whose category matches.
func (m *Memory) ListByCategory(categoryID int64) ([]models.Extension, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filterByCategory(categoryID), nil
}

// ListByCategoryPaged pages through one category.
func (m *Memory) ListByCategoryPaged(categoryID int64, page, limit int) ([]models.Extension, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pageOf(m.filterByCategory(categoryID), page, limit), nil
}

// SearchExtensions matches the query case-insensitively against name or
// description, capped at MaxPageSize, ordered by id.
func (m *Memory) SearchExtensions(query string) ([]models.Extension, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := strings.ToLower(query)
	var matches []models.Extension
	for _, e := range m.extensions {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Description), q) {
			matches = append(matches, e)
			if len(matches) == MaxPageSize {
				break
			}
		}
	}
	return matches, nil
}

// ListCategories returns all categories ordered by id.
func (m *Memory) ListCategories() ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Category(nil), m.categories...), nil
}

// FindExtensionByID retrieves an extension by id. Returns nil if not found.
func (m *Memory) FindExtensionByID(id int64) (*models.Extension, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.extensions {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, nil
}

// FindCategoryByID retrieves a category by id. Returns nil if not found.
func (m *Memory) FindCategoryByID(id int64) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

// CreateExtension inserts a new extension, enforcing the category
// reference the way the database foreign key does.
func (m *Memory) CreateExtension(draft *models.ExtensionDraft) (*models.Extension, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if draft.CategoryID != nil && !m.categoryExists(*draft.CategoryID) {
		return nil, fmt.Errorf("create extension: %w", ErrInvalidReference)
	}

	e := models.Extension{
		ID:          m.nextExtID,
		Name:        draft.Name,
		Description: draft.Description,
		CategoryID:  draft.CategoryID,
		Icon:        draft.Icon,
		Rating:      draft.Rating,
		Users:       draft.Users,
		CreatedAt:   time.Now().UTC(),
	}
	m.nextExtID++
	m.extensions = append(m.extensions, e)
	return &e, nil
}

// CreateCategory inserts a new category, enforcing name uniqueness the
// way the database unique constraint does.
func (m *Memory) CreateCategory(draft *models.CategoryDraft) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.categories {
		if c.Name == draft.Name {
			return nil, fmt.Errorf("create category: %w", ErrDuplicateName)
		}
	}

	c := models.Category{
		ID:        m.nextCatID,
		Name:      draft.Name,
		CreatedAt: time.Now().UTC(),
	}
	m.nextCatID++
	m.categories = append(m.categories, c)
	return &c, nil
}

func (m *Memory) categoryExists(id int64) bool {
	for _, c := range m.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// filterByCategory returns extensions in the category, ordered by id.
// Caller holds the lock.
func (m *Memory) filterByCategory(categoryID int64) []models.Extension {
	var out []models.Extension
	for _, e := range m.extensions {
		if e.CategoryID != nil && *e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out
}

// pageOf slices one page out of an id-ordered list using the port's
// offset semantics.
func pageOf(items []models.Extension, page, limit int) []models.Extension {
	page, limit = clampPage(page, limit)
	start := page * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return append([]models.Extension(nil), items[start:end]...)
}
