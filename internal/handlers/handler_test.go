// handler_test.go provides shared test infrastructure for handler unit
// tests. Handlers run against the in-memory Catalog, so no external
// services are needed.
package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"extstore/internal/models"
	"extstore/internal/store"
)

// testEnv holds the handler under test and its backing memory store.
type testEnv struct {
	Store   *store.Memory
	Catalog *Catalog

	Security     models.Category
	Productivity models.Category
	Guardian     models.Extension
	TabManager   models.Extension
}

// newTestEnv builds a Catalog handler over a memory store seeded with
// the two-extension fixture: Privacy Guardian (Security) and
// Tab Manager Pro (Productivity).
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	m := store.NewMemory()
	env := &testEnv{Store: m, Catalog: NewCatalog(m, nil)}

	sec, err := m.CreateCategory(&models.CategoryDraft{Name: "Security"})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	prod, err := m.CreateCategory(&models.CategoryDraft{Name: "Productivity"})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	env.Security, env.Productivity = *sec, *prod

	guardian, err := m.CreateExtension(&models.ExtensionDraft{
		Name:        "Privacy Guardian",
		Description: "Enhanced privacy protection and tracker blocking",
		CategoryID:  &sec.ID,
		Icon:        "shield",
		Rating:      decimal.RequireFromString("4.50"),
		Users:       "100K+",
	})
	if err != nil {
		t.Fatalf("seed extension: %v", err)
	}
	tabs, err := m.CreateExtension(&models.ExtensionDraft{
		Name:        "Tab Manager Pro",
		Description: "Efficient tab organization and management",
		CategoryID:  &prod.ID,
		Icon:        "layers",
		Rating:      decimal.RequireFromString("4.80"),
		Users:       "50K+",
	})
	if err != nil {
		t.Fatalf("seed extension: %v", err)
	}
	env.Guardian, env.TabManager = *guardian, *tabs

	return env
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
