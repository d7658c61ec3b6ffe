package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"inkwell/internal/metrics"
)

const (
	visitorKeyPrefix = "uv:post:"

	// DefaultVisitorWindow is how long a post's visitor set lives after its
	// most recent view.
	DefaultVisitorWindow = 24 * time.Hour
)

// VisitorCounter tracks which visitors have viewed a post using one
// HyperLogLog per post. The estimate is approximate, like all HLL counts.
type VisitorCounter struct {
	client *redis.Client
	window time.Duration
}

// NewVisitorCounter creates a counter whose per-post sets expire after window.
func NewVisitorCounter(client *redis.Client, window time.Duration) *VisitorCounter {
	if window == 0 {
		window = DefaultVisitorWindow
	}
	return &VisitorCounter{client: client, window: window}
}

// Add records visitor for postID and reports whether it was new.
func (vc *VisitorCounter) Add(ctx context.Context, postID int64, visitor string) (bool, error) {
	key := visitorKeyPrefix + strconv.FormatInt(postID, 10)

	var added *redis.IntCmd
	_, err := vc.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		added = pipe.PFAdd(ctx, key, visitor)
		pipe.Expire(ctx, key, vc.window)
		return nil
	})
	if err != nil {
		metrics.ValkeyErrors.WithLabelValues("visitor_add").Inc()
		return false, fmt.Errorf("track visitor: %w", err)
	}
	return added.Val() == 1, nil
}
