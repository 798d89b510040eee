// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Extension is a catalog record for an installable browser extension.
// Icon is a symbolic icon name, not binary data. Users is a display
// label ("100K+"), not a numeric count.
type Extension struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  *int64          `json:"category_id"`
	Icon        string          `json:"icon"`
	Rating      decimal.Decimal `json:"rating"`
	Users       string          `json:"users"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExtensionDraft carries the caller-supplied fields for a new extension.
// A non-nil CategoryID must reference an existing category; the store
// enforces this at the persistence boundary.
type ExtensionDraft struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  *int64          `json:"category_id"`
	Icon        string          `json:"icon"`
	Rating      decimal.Decimal `json:"rating"`
	Users       string          `json:"users"`
}
