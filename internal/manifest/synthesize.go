// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package manifest

import (
	"fmt"

	"extstore/internal/models"
)

// profile describes the runtime capabilities synthesized for extensions
// of one category.
type profile struct {
	permissions     []string
	hostPermissions []string
	serviceWorker   bool
	contentScripts  bool
	netRequestRules bool
	webResources    bool
}

// profiles maps category names to capability profiles. Categories
// without an entry fall back to defaultProfile.
var profiles = map[string]profile{
	"Security": {
		permissions:     []string{"tabs", "declarativeNetRequest", "storage"},
		hostPermissions: []string{"http://*/*", "https://*/*"},
		serviceWorker:   true,
		contentScripts:  true,
		netRequestRules: true,
		webResources:    true,
	},
	"Productivity": {
		permissions:   []string{"tabs", "activeTab", "storage"},
		serviceWorker: true,
	},
	"Development": {
		permissions:     []string{"scripting", "activeTab", "storage"},
		hostPermissions: []string{"https://*.github.com/*", "http://localhost/*"},
		serviceWorker:   true,
		contentScripts:  true,
	},
}

// defaultProfile covers uncategorized extensions: local storage only, no
// background worker, no host access.
var defaultProfile = profile{
	permissions: []string{"storage"},
}

// Synthesize builds an untyped manifest record for an extension.
// The output is deterministic for a given extension and category name,
// so downstream summaries can be cached per extension. It is returned as
// generic JSON-like data and must pass through the same schema
// validation as any externally supplied manifest; a synthesized record
// failing validation indicates a bug, not bad user input.
func Synthesize(ext *models.Extension, categoryName string) map[string]any {
	p, ok := profiles[categoryName]
	if !ok {
		p = defaultProfile
	}

	m := map[string]any{
		"manifest_version": SchemaVersion,
		"name":             ext.Name,
		"version":          "1.0.0",
		"description":      ext.Description,
		"icons": map[string]any{
			"16":  fmt.Sprintf("icons/%s-16.png", ext.Icon),
			"48":  fmt.Sprintf("icons/%s-48.png", ext.Icon),
			"128": fmt.Sprintf("icons/%s-128.png", ext.Icon),
		},
		"action": map[string]any{
			"default_popup": "popup.html",
			"default_title": ext.Name,
		},
	}

	if len(p.permissions) > 0 {
		m["permissions"] = p.permissions
	}
	if len(p.hostPermissions) > 0 {
		m["host_permissions"] = p.hostPermissions
	}
	if p.serviceWorker {
		m["background"] = map[string]any{
			"service_worker": "background.js",
			"type":           "module",
		}
	}
	if p.contentScripts {
		m["content_scripts"] = []any{
			map[string]any{
				"matches": []string{"<all_urls>"},
				"js":      []string{"content.js"},
				"run_at":  "document_idle",
			},
		}
	}
	if p.netRequestRules {
		m["declarative_net_request"] = map[string]any{
			"rule_resources": []any{
				map[string]any{
					"id":      "ruleset_1",
					"enabled": true,
					"path":    "rules.json",
				},
			},
		}
	}
	if p.webResources {
		m["web_accessible_resources"] = []any{
			map[string]any{
				"resources": []string{"blocked.html"},
				"matches":   []string{"<all_urls>"},
			},
		}
	}

	return m
}
