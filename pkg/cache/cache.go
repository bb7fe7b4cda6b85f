// Package cache provides artifact caching for the code39 HTTP surface.
//
// Rendering is cheap but the serve command may be asked for the same
// barcode many times; cached artifacts are keyed by a hash of the input
// text and the render configuration, so any change to either produces a
// fresh render. The core library never touches the cache.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/linealabs/code39/pkg/render"
)

// Cache stores rendered artifacts keyed by string.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL; zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey builds the cache key for a rendered barcode: a hash of
// the input text and every configuration field that affects output.
func ArtifactKey(text string, cfg render.Config) string {
	payload := fmt.Sprintf("%s\x00%s\x00%d\x00%d\x00%d",
		text, cfg.Format, cfg.ModuleWidth, cfg.BarHeight, cfg.QuietZone)
	return "artifact:" + Hash([]byte(payload))
}
