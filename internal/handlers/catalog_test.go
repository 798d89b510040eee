// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"extstore/internal/manifest"
	"extstore/internal/models"
	"extstore/internal/store"
)

func decodeExtensions(t *testing.T, rr *httptest.ResponseRecorder) []models.Extension {
	t.Helper()
	var items []models.Extension
	if err := json.Unmarshal(rr.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
	return items
}

func TestExtensionsListAll(t *testing.T) {
	env := newTestEnv(t)

	rr := httptest.NewRecorder()
	env.Catalog.ExtensionsList(rr, httptest.NewRequest(http.MethodGet, "/api/extensions", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	items := decodeExtensions(t, rr)
	if len(items) != 2 {
		t.Errorf("got %d extensions, want 2", len(items))
	}
}

func TestExtensionsListEmptyIsJSONArray(t *testing.T) {
	empty := NewCatalog(store.NewMemory(), nil)
	rr := httptest.NewRecorder()
	empty.ExtensionsList(rr, httptest.NewRequest(http.MethodGet, "/api/extensions", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Errorf("empty catalog must serialize as [], got %q", rr.Body.String())
	}
}

func TestExtensionsListPaged(t *testing.T) {
	env := newTestEnv(t)

	rr := httptest.NewRecorder()
	env.Catalog.ExtensionsList(rr, httptest.NewRequest(http.MethodGet, "/api/extensions?page=0&limit=1", nil))

	items := decodeExtensions(t, rr)
	if len(items) != 1 || items[0].ID != env.Guardian.ID {
		t.Errorf("page 0 limit 1: got %+v", items)
	}

	rr = httptest.NewRecorder()
	env.Catalog.ExtensionsList(rr, httptest.NewRequest(http.MethodGet, "/api/extensions?page=1&limit=1", nil))

	items = decodeExtensions(t, rr)
	if len(items) != 1 || items[0].ID != env.TabManager.ID {
		t.Errorf("page 1 limit 1: got %+v", items)
	}
}

func TestExtensionsListBadPagination(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{
		"/api/extensions?page=abc",
		"/api/extensions?page=-1",
		"/api/extensions?limit=abc",
		"/api/extensions?limit=0",
	} {
		t.Run(target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			env.Catalog.ExtensionsList(rr, httptest.NewRequest(http.MethodGet, target, nil))
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", rr.Code)
			}
		})
	}
}

func TestExtensionsSearch(t *testing.T) {
	env := newTestEnv(t)

	rr := httptest.NewRecorder()
	env.Catalog.ExtensionsSearch(rr, httptest.NewRequest(http.MethodGet, "/api/extensions/search?q=tab", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	items := decodeExtensions(t, rr)
	if len(items) != 1 || items[0].ID != env.TabManager.ID {
		t.Errorf("search 'tab': got %+v, want exactly Tab Manager Pro", items)
	}
}

func TestExtensionsSearchRejectsBlankQuery(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{
		"/api/extensions/search",
		"/api/extensions/search?q=",
		"/api/extensions/search?q=%20%20%20",
	} {
		t.Run(target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			env.Catalog.ExtensionsSearch(rr, httptest.NewRequest(http.MethodGet, target, nil))
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", rr.Code)
			}
			if !strings.Contains(rr.Body.String(), "Search query is required") {
				t.Errorf("body: %q", rr.Body.String())
			}
		})
	}
}

func TestExtensionGet(t *testing.T) {
	env := newTestEnv(t)

	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/extensions/1", nil), "id", fmt.Sprint(env.Guardian.ID))
	rr := httptest.NewRecorder()
	env.Catalog.ExtensionGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var ext models.Extension
	if err := json.Unmarshal(rr.Body.Bytes(), &ext); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ext.Name != "Privacy Guardian" {
		t.Errorf("name: got %q", ext.Name)
	}
}

func TestExtensionGetNotFound(t *testing.T) {
	env := newTestEnv(t)

	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/extensions/999", nil), "id", "999")
	rr := httptest.NewRecorder()
	env.Catalog.ExtensionGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestExtensionGetBadID(t *testing.T) {
	env := newTestEnv(t)

	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/extensions/abc", nil), "id", "abc")
	rr := httptest.NewRecorder()
	env.Catalog.ExtensionGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
}

func TestExtensionManifest(t *testing.T) {
	env := newTestEnv(t)

	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/extensions/1/manifest", nil), "id", fmt.Sprint(env.Guardian.ID))
	rr := httptest.NewRecorder()
	env.Catalog.ExtensionManifest(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Manifest *manifest.Manifest       `json:"manifest"`
		Security manifest.SecuritySummary `json:"security"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Manifest == nil || resp.Manifest.Name != "Privacy Guardian" {
		t.Fatalf("manifest: %+v", resp.Manifest)
	}
	if resp.Manifest.ManifestVersion != manifest.SchemaVersion {
		t.Errorf("manifest_version: got %d", resp.Manifest.ManifestVersion)
	}

	// Security category profile: tabs + declarativeNetRequest + storage,
	// background worker present.
	want := []string{"tabs", "declarativeNetRequest", "storage"}
	if fmt.Sprint(resp.Security.CriticalPermissions) != fmt.Sprint(want) {
		t.Errorf("critical permissions: got %v, want %v", resp.Security.CriticalPermissions, want)
	}
	if !resp.Security.HasServiceWorker {
		t.Error("security profile must report a service worker")
	}
}

func TestExtensionManifestNotFound(t *testing.T) {
	env := newTestEnv(t)

	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/extensions/999/manifest", nil), "id", "999")
	rr := httptest.NewRecorder()
	env.Catalog.ExtensionManifest(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestCategoriesList(t *testing.T) {
	env := newTestEnv(t)

	rr := httptest.NewRecorder()
	env.Catalog.CategoriesList(rr, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var cats []models.Category
	if err := json.Unmarshal(rr.Body.Bytes(), &cats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cats) != 2 {
		t.Errorf("got %d categories, want 2", len(cats))
	}
}

func TestCategoryExtensions(t *testing.T) {
	env := newTestEnv(t)

	req := withChiURLParam(
		httptest.NewRequest(http.MethodGet, "/api/categories/1/extensions", nil),
		"categoryId", fmt.Sprint(env.Security.ID),
	)
	rr := httptest.NewRecorder()
	env.Catalog.CategoryExtensions(rr, req)

	items := decodeExtensions(t, rr)
	if len(items) != 1 || items[0].ID != env.Guardian.ID {
		t.Errorf("security category: got %+v, want exactly Privacy Guardian", items)
	}
}

func TestCategoryExtensionsEmptyCategory(t *testing.T) {
	env := newTestEnv(t)
	empty, err := env.Store.CreateCategory(&models.CategoryDraft{Name: "Shopping"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	req := withChiURLParam(
		httptest.NewRequest(http.MethodGet, "/api/categories/3/extensions", nil),
		"categoryId", fmt.Sprint(empty.ID),
	)
	rr := httptest.NewRecorder()
	env.Catalog.CategoryExtensions(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Errorf("empty category must serialize as [], got %q", rr.Body.String())
	}
}

func TestCategoryExtensionsBadID(t *testing.T) {
	env := newTestEnv(t)

	req := withChiURLParam(
		httptest.NewRequest(http.MethodGet, "/api/categories/oops/extensions", nil),
		"categoryId", "oops",
	)
	rr := httptest.NewRecorder()
	env.Catalog.CategoryExtensions(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid category ID") {
		t.Errorf("body: %q", rr.Body.String())
	}
}

func TestExtensionCreate(t *testing.T) {
	env := newTestEnv(t)

	body := fmt.Sprintf(`{
		"name": "Dev Tools Plus",
		"description": "Advanced developer tools and debugging features",
		"category_id": %d,
		"icon": "code",
		"rating": "4.70",
		"users": "75K+"
	}`, env.Productivity.ID)

	rr := httptest.NewRecorder()
	env.Catalog.ExtensionCreate(rr, httptest.NewRequest(http.MethodPost, "/api/extensions", strings.NewReader(body)))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rr.Code, rr.Body.String())
	}
	var ext models.Extension
	if err := json.Unmarshal(rr.Body.Bytes(), &ext); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ext.ID == 0 || ext.Name != "Dev Tools Plus" {
		t.Errorf("created: %+v", ext)
	}
}

func TestExtensionCreateRejections(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid json", `{"name": `, "Invalid JSON body"},
		{"missing name", `{"description":"d","icon":"box","users":"1K+"}`, "name is required"},
		{"missing description", `{"name":"X","icon":"box","users":"1K+"}`, "description is required"},
		{"missing icon", `{"name":"X","description":"d","users":"1K+"}`, "icon is required"},
		{"unknown category", `{"name":"X","description":"d","icon":"box","users":"1K+","category_id":999}`, "Category does not exist"},
		{"name too long", fmt.Sprintf(`{"name":%q,"description":"d","icon":"box","users":"1K+"}`, strings.Repeat("x", 101)), "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			env.Catalog.ExtensionCreate(rr, httptest.NewRequest(http.MethodPost, "/api/extensions", strings.NewReader(tt.body)))
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", rr.Code)
			}
			if !strings.Contains(rr.Body.String(), tt.want) {
				t.Errorf("body %q does not mention %q", rr.Body.String(), tt.want)
			}
		})
	}
}

func TestCategoryCreate(t *testing.T) {
	env := newTestEnv(t)

	rr := httptest.NewRecorder()
	env.Catalog.CategoryCreate(rr, httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":"Development"}`)))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rr.Code, rr.Body.String())
	}
	var cat models.Category
	if err := json.Unmarshal(rr.Body.Bytes(), &cat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cat.ID == 0 || cat.Name != "Development" {
		t.Errorf("created: %+v", cat)
	}
}

func TestCategoryCreateDuplicate(t *testing.T) {
	env := newTestEnv(t)

	rr := httptest.NewRecorder()
	env.Catalog.CategoryCreate(rr, httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":"Security"}`)))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "already exists") {
		t.Errorf("body: %q", rr.Body.String())
	}
}
