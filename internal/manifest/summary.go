// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package manifest

import "strings"

// criticalPermissions is the fixed reference set of capability names
// considered security-sensitive enough to surface in the summary.
var criticalPermissions = map[string]struct{}{
	"tabs":                  {},
	"activeTab":             {},
	"scripting":             {},
	"declarativeNetRequest": {},
	"storage":               {},
}

// SecuritySummary is the permission-risk digest derived from a manifest.
// Slices are always non-nil so an empty summary serializes as [].
type SecuritySummary struct {
	CriticalPermissions []string `json:"criticalPermissions"`
	HostPermissions     []string `json:"hostPermissions"`
	HasServiceWorker    bool     `json:"hasServiceWorker"`
}

// Summarize derives a SecuritySummary from a validated manifest. It is
// total and pure: it never fails, never mutates the manifest, and
// identical manifests yield identical summaries, so results may be
// cached keyed by manifest content.
func Summarize(m *Manifest) SecuritySummary {
	critical := make([]string, 0, len(m.Permissions))
	for _, p := range m.Permissions {
		if _, ok := criticalPermissions[p]; ok {
			// Manifest order and duplicates are preserved.
			critical = append(critical, p)
		}
	}

	hosts := make([]string, 0, len(m.HostPermissions))
	for _, h := range m.HostPermissions {
		if hasWildcardSubdomain(h) {
			hosts = append(hosts, h)
		}
	}

	return SecuritySummary{
		CriticalPermissions: critical,
		HostPermissions:     hosts,
		HasServiceWorker:    m.Background != nil && m.Background.ServiceWorker != "",
	}
}

// hasWildcardSubdomain reports whether a host match pattern's subdomain
// segment is a wildcard (e.g. "https://*.example.com/*"). Such patterns
// broaden the matched origins to every subdomain, which is what makes a
// host permission sensitive enough to report.
func hasWildcardSubdomain(pattern string) bool {
	return strings.Contains(pattern, "://*.")
}
