// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"extstore/internal/models"
	"extstore/internal/store"
)

// Field length limits matching the database schema.
const (
	maxCategoryNameLen  = 50
	maxExtensionNameLen = 100
	maxIconLen          = 50
	maxUsersLen         = 20
)

// defaultPageSize is used when the caller paginates without a limit.
const defaultPageSize = 20

// parseID parses a numeric chi path parameter. Non-numeric input is a
// bad request, never a lookup miss.
func parseID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, raw, err)
	}
	return id, nil
}

// parsePageLimit reads the optional page/limit query parameters.
// paged reports whether either was supplied. Values are validated as
// non-negative integers; limit is clamped into [1, MaxPageSize].
func parsePageLimit(r *http.Request) (page, limit int, paged bool, errMsg string) {
	q := r.URL.Query()
	pageStr, limitStr := q.Get("page"), q.Get("limit")
	if pageStr == "" && limitStr == "" {
		return 0, 0, false, ""
	}

	page = 0
	if pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 0 {
			return 0, 0, false, "Invalid page parameter"
		}
		page = n
	}

	limit = defaultPageSize
	if limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			return 0, 0, false, "Invalid limit parameter"
		}
		if n > store.MaxPageSize {
			n = store.MaxPageSize
		}
		limit = n
	}

	return page, limit, true, ""
}

// validateExtensionDraft checks a new-extension payload and returns the
// first error found, or "".
func validateExtensionDraft(d *models.ExtensionDraft) string {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return "Extension name is required."
	}
	if utf8.RuneCountInString(d.Name) > maxExtensionNameLen {
		return "Extension name is too long (max 100 characters)."
	}
	if strings.TrimSpace(d.Description) == "" {
		return "Extension description is required."
	}
	d.Icon = strings.TrimSpace(d.Icon)
	if d.Icon == "" {
		return "Extension icon is required."
	}
	if utf8.RuneCountInString(d.Icon) > maxIconLen {
		return "Extension icon is too long (max 50 characters)."
	}
	if utf8.RuneCountInString(d.Users) > maxUsersLen {
		return "Users label is too long (max 20 characters)."
	}
	return ""
}

// validateCategoryDraft checks a new-category payload and returns the
// first error found, or "".
func validateCategoryDraft(d *models.CategoryDraft) string {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return "Category name is required."
	}
	if utf8.RuneCountInString(d.Name) > maxCategoryNameLen {
		return "Category name is too long (max 50 characters)."
	}
	return ""
}
