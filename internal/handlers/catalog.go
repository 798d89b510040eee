// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"extstore/internal/cache"
	"extstore/internal/manifest"
	"extstore/internal/models"
	"extstore/internal/store"
)

// Catalog groups the JSON API handlers for the extension catalog. The
// manifest cache is optional; without it every manifest request runs
// synthesis and validation.
type Catalog struct {
	store     store.Catalog
	manifests *cache.ManifestCache
}

// NewCatalog creates a new Catalog handler group. manifests may be nil
// when Valkey is not configured.
func NewCatalog(st store.Catalog, manifests *cache.ManifestCache) *Catalog {
	return &Catalog{store: st, manifests: manifests}
}

// ExtensionsList returns all extensions, or one page when page/limit
// query parameters are supplied.
func (c *Catalog) ExtensionsList(w http.ResponseWriter, r *http.Request) {
	page, limit, paged, errMsg := parsePageLimit(r)
	if errMsg != "" {
		respondError(w, http.StatusBadRequest, errMsg)
		return
	}

	var items []models.Extension
	var err error
	if paged {
		items, err = c.store.ListExtensionsPaged(page, limit)
	} else {
		items, err = c.store.ListExtensions()
	}
	if err != nil {
		respondInternalError(w, r, "list extensions failed", err)
		return
	}

	if items == nil {
		items = []models.Extension{}
	}
	respondJSON(w, http.StatusOK, items)
}

// ExtensionsSearch returns extensions whose name or description contains
// the query, case-insensitively. A missing or blank query is rejected
// before it reaches the store.
func (c *Catalog) ExtensionsSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondError(w, http.StatusBadRequest, "Search query is required")
		return
	}

	items, err := c.store.SearchExtensions(query)
	if err != nil {
		respondInternalError(w, r, "search extensions failed", err, "query", query)
		return
	}

	if items == nil {
		items = []models.Extension{}
	}
	respondJSON(w, http.StatusOK, items)
}

// ExtensionGet returns a single extension by id.
func (c *Catalog) ExtensionGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid extension ID")
		return
	}

	ext, err := c.store.FindExtensionByID(id)
	if err != nil {
		respondInternalError(w, r, "find extension failed", err, "id", id)
		return
	}
	if ext == nil {
		respondError(w, http.StatusNotFound, "Extension not found")
		return
	}

	respondJSON(w, http.StatusOK, ext)
}

// manifestResponse is the merged manifest + security summary payload.
type manifestResponse struct {
	Manifest *manifest.Manifest       `json:"manifest"`
	Security manifest.SecuritySummary `json:"security"`
}

// ExtensionManifest synthesizes, validates, and summarizes the manifest
// for one extension. The synthesized record goes through full schema
// validation; a rejection here means a synthesis bug and surfaces as an
// opaque internal error.
func (c *Catalog) ExtensionManifest(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid extension ID")
		return
	}

	ctx := r.Context()
	if c.manifests != nil {
		if body, ok := c.manifests.Get(ctx, id); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(body)
			return
		}
	}

	ext, err := c.store.FindExtensionByID(id)
	if err != nil {
		respondInternalError(w, r, "find extension failed", err, "id", id)
		return
	}
	if ext == nil {
		respondError(w, http.StatusNotFound, "Extension not found")
		return
	}

	categoryName := ""
	if ext.CategoryID != nil {
		cat, err := c.store.FindCategoryByID(*ext.CategoryID)
		if err != nil {
			respondInternalError(w, r, "find category failed", err, "id", *ext.CategoryID)
			return
		}
		if cat != nil {
			categoryName = cat.Name
		}
	}

	raw := manifest.Synthesize(ext, categoryName)
	m, err := manifest.Validate(raw)
	if err != nil {
		respondInternalError(w, r, "synthesized manifest rejected", err,
			"extension_id", ext.ID, "category", categoryName)
		return
	}

	body, err := json.Marshal(manifestResponse{
		Manifest: m,
		Security: manifest.Summarize(m),
	})
	if err != nil {
		respondInternalError(w, r, "encode manifest response failed", err, "extension_id", ext.ID)
		return
	}

	if c.manifests != nil {
		c.manifests.Set(ctx, id, body)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// CategoriesList returns all categories.
func (c *Catalog) CategoriesList(w http.ResponseWriter, r *http.Request) {
	items, err := c.store.ListCategories()
	if err != nil {
		respondInternalError(w, r, "list categories failed", err)
		return
	}

	if items == nil {
		items = []models.Category{}
	}
	respondJSON(w, http.StatusOK, items)
}

// CategoryExtensions returns the extensions in one category, optionally
// paginated. An unknown category yields an empty list, not an error.
func (c *Catalog) CategoryExtensions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r, "categoryId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	page, limit, paged, errMsg := parsePageLimit(r)
	if errMsg != "" {
		respondError(w, http.StatusBadRequest, errMsg)
		return
	}

	var items []models.Extension
	if paged {
		items, err = c.store.ListByCategoryPaged(categoryID, page, limit)
	} else {
		items, err = c.store.ListByCategory(categoryID)
	}
	if err != nil {
		respondInternalError(w, r, "list extensions by category failed", err, "category_id", categoryID)
		return
	}

	if items == nil {
		items = []models.Extension{}
	}
	respondJSON(w, http.StatusOK, items)
}

// ExtensionCreate inserts a new extension record.
func (c *Catalog) ExtensionCreate(w http.ResponseWriter, r *http.Request) {
	var draft models.ExtensionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if msg := validateExtensionDraft(&draft); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	ext, err := c.store.CreateExtension(&draft)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			respondError(w, http.StatusBadRequest, "Category does not exist")
			return
		}
		respondInternalError(w, r, "create extension failed", err, "name", draft.Name)
		return
	}

	slog.Info("extension created", "id", ext.ID, "name", ext.Name)
	respondJSON(w, http.StatusCreated, ext)
}

// CategoryCreate inserts a new category record.
func (c *Catalog) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var draft models.CategoryDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if msg := validateCategoryDraft(&draft); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	cat, err := c.store.CreateCategory(&draft)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			respondError(w, http.StatusBadRequest, "Category name already exists")
			return
		}
		respondInternalError(w, r, "create category failed", err, "name", draft.Name)
		return
	}

	slog.Info("category created", "id", cat.ID, "name", cat.Name)
	respondJSON(w, http.StatusCreated, cat)
}
