// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category groups extensions for browsing. Names are unique; categories
// are append-only in normal operation — never renamed or removed.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryDraft carries the caller-supplied fields for a new category.
// The generated id and timestamp are assigned by the store.
type CategoryDraft struct {
	Name string `json:"name"`
}
