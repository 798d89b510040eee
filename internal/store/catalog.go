// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store owns persistence of extension and category records. The
// Catalog interface is the storage port consumed by handlers; Store is
// the Postgres adapter and Memory a semantically equivalent in-memory
// fake for tests.
package store

import (
	"errors"

	"extstore/internal/models"
)

// MaxPageSize caps page sizes and search result counts. Substring search
// cannot use a prefix index, so unbounded scans stay off the table.
const MaxPageSize = 50

// Constraint violations surfaced by the persistence boundary. Callers
// detect them with errors.Is and translate to bad-request responses.
var (
	// ErrInvalidReference means a draft pointed at a category that does
	// not exist.
	ErrInvalidReference = errors.New("category reference does not exist")

	// ErrDuplicateName means a category with the same name already exists.
	ErrDuplicateName = errors.New("category name already exists")
)

// Catalog is the storage port for catalog queries and inserts.
//
// Pagination is deterministic: ascending id, offset = page × limit,
// limit capped at MaxPageSize. A page shorter than the requested limit
// (possibly empty) means no further pages exist. Lookup absence is a
// normal outcome reported as (nil, nil), not an error.
type Catalog interface {
	ListExtensions() ([]models.Extension, error)
	ListExtensionsPaged(page, limit int) ([]models.Extension, error)
	ListByCategory(categoryID int64) ([]models.Extension, error)
	ListByCategoryPaged(categoryID int64, page, limit int) ([]models.Extension, error)
	SearchExtensions(query string) ([]models.Extension, error)
	ListCategories() ([]models.Category, error)
	FindExtensionByID(id int64) (*models.Extension, error)
	FindCategoryByID(id int64) (*models.Category, error)
	CreateExtension(draft *models.ExtensionDraft) (*models.Extension, error)
	CreateCategory(draft *models.CategoryDraft) (*models.Category, error)
}

// clampPage normalizes page and limit into their contractual ranges.
func clampPage(page, limit int) (int, int) {
	if page < 0 {
		page = 0
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
