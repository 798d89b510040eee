// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package manifest implements the extension manifest pipeline: schema
// validation of untyped manifest records, deterministic synthesis of a
// manifest from a catalog record, and extraction of a security summary.
// Manifests are transient — validated, summarized, and discarded per
// request; nothing in this package touches the network or disk.
package manifest

// SchemaVersion is the single accepted manifest_version value. Records
// declaring any other version are rejected outright.
const SchemaVersion = 8

// Manifest is a validated structural descriptor of an extension's
// declared runtime capabilities. Unknown fields in the source record are
// dropped during decoding (the schema is additive-compatible).
type Manifest struct {
	ManifestVersion        int                     `json:"manifest_version"`
	Name                   string                  `json:"name"`
	Version                string                  `json:"version"`
	Description            string                  `json:"description,omitempty"`
	Icons                  map[string]string       `json:"icons,omitempty"`
	Action                 *Action                 `json:"action,omitempty"`
	Background             *Background             `json:"background,omitempty"`
	Permissions            []string                `json:"permissions,omitempty"`
	HostPermissions        []string                `json:"host_permissions,omitempty"`
	WebAccessibleResources []WebAccessibleResource `json:"web_accessible_resources,omitempty"`
	ContentScripts         []ContentScript         `json:"content_scripts,omitempty"`
	DeclarativeNetRequest  *DeclarativeNetRequest  `json:"declarative_net_request,omitempty"`
}

// Action describes the extension's toolbar entry point.
type Action struct {
	DefaultPopup string            `json:"default_popup,omitempty"`
	DefaultIcon  map[string]string `json:"default_icon,omitempty"`
	DefaultTitle string            `json:"default_title,omitempty"`
}

// Background describes the extension's background service worker.
// Type, when present, must be "module".
type Background struct {
	ServiceWorker string `json:"service_worker"`
	Type          string `json:"type,omitempty"`
}

// WebAccessibleResource exposes packaged resources to matching pages.
type WebAccessibleResource struct {
	Resources     []string `json:"resources"`
	Matches       []string `json:"matches"`
	UseDynamicURL bool     `json:"use_dynamic_url,omitempty"`
}

// ContentScript declares code injected into pages matching the given
// patterns. RunAt, when present, is one of document_idle,
// document_start, or document_end.
type ContentScript struct {
	Matches []string `json:"matches"`
	JS      []string `json:"js,omitempty"`
	CSS     []string `json:"css,omitempty"`
	RunAt   string   `json:"run_at,omitempty"`
}

// DeclarativeNetRequest references static network-request rule sets.
type DeclarativeNetRequest struct {
	RuleResources []RuleResource `json:"rule_resources"`
}

// RuleResource is a single declarative net request rule set descriptor.
type RuleResource struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}
