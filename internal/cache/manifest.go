// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// manifest.go provides a Valkey-backed cache for rendered manifest
// responses. Manifest synthesis is deterministic per extension and the
// security summary is a pure function of the manifest, so a cached
// response never goes stale; the TTL only bounds memory use. Cache
// failures degrade to a miss and never fail the request.
package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// manifestKeyPrefix is the Valkey key prefix for cached manifests.
	manifestKeyPrefix = "manifest:"

	// DefaultManifestTTL is how long a rendered manifest response stays cached.
	DefaultManifestTTL = 5 * time.Minute
)

// ManifestCache stores rendered manifest+summary JSON responses keyed by
// extension id.
type ManifestCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewManifestCache creates a manifest cache backed by the given Valkey client.
func NewManifestCache(client *redis.Client, ttl time.Duration) *ManifestCache {
	if ttl == 0 {
		ttl = DefaultManifestTTL
	}
	return &ManifestCache{client: client, ttl: ttl}
}

// Get retrieves the cached response for an extension. Returns false on miss.
func (mc *ManifestCache) Get(ctx context.Context, extensionID int64) ([]byte, bool) {
	val, err := mc.client.Get(ctx, manifestKey(extensionID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("manifest cache get error", "extension_id", extensionID, "error", err)
		return nil, false
	}
	slog.Debug("manifest cache hit", "extension_id", extensionID)
	return val, true
}

// Set stores the rendered response for an extension with the configured TTL.
func (mc *ManifestCache) Set(ctx context.Context, extensionID int64, body []byte) {
	if err := mc.client.Set(ctx, manifestKey(extensionID), body, mc.ttl).Err(); err != nil {
		slog.Warn("manifest cache set error", "extension_id", extensionID, "error", err)
	}
}

// Invalidate removes one extension's cached response.
func (mc *ManifestCache) Invalidate(ctx context.Context, extensionID int64) {
	if err := mc.client.Del(ctx, manifestKey(extensionID)).Err(); err != nil {
		slog.Warn("manifest cache invalidate error", "extension_id", extensionID, "error", err)
	}
}

// manifestKey returns the Valkey key for an extension id.
func manifestKey(extensionID int64) string {
	return manifestKeyPrefix + strconv.FormatInt(extensionID, 10)
}
