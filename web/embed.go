// Package web provides the embedded static catalog UI. The files are
// compiled into the binary and served at the site root.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
