package blog

import (
	"context"
	"log/slog"
	"strconv"

	"inkwell/internal/metrics"
)

// ViewCounter persists per-post view counters.
type ViewCounter interface {
	RecordView(ctx context.Context, postID int64, unique bool) error
}

// VisitorSet remembers which visitors have seen a post. Add reports true
// the first time a visitor is added for that post.
type VisitorSet interface {
	Add(ctx context.Context, postID int64, visitor string) (bool, error)
}

// ViewRecorder counts page views and unique visitors for post pages.
type ViewRecorder struct {
	counter  ViewCounter
	visitors VisitorSet
}

// NewViewRecorder creates a ViewRecorder. visitors may be nil, in which
// case only page views are counted.
func NewViewRecorder(counter ViewCounter, visitors VisitorSet) *ViewRecorder {
	return &ViewRecorder{counter: counter, visitors: visitors}
}

// Record counts one view of postID by visitor. A failing visitor set only
// costs the unique-visitor increment.
func (r *ViewRecorder) Record(ctx context.Context, postID int64, visitor string) error {
	unique := false
	if r.visitors != nil && visitor != "" {
		added, err := r.visitors.Add(ctx, postID, visitor)
		if err != nil {
			slog.Warn("visitor tracking failed", "post_id", postID, "error", err)
		}
		unique = added
	}
	if err := r.counter.RecordView(ctx, postID, unique); err != nil {
		return err
	}
	metrics.PostViews.WithLabelValues(strconv.FormatBool(unique)).Inc()
	return nil
}
