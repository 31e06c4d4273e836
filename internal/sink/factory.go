package sink

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/volsweep/internal/config"
	"github.com/vk/volsweep/internal/ctxlog"
)

// constructor connects one sink. Connection failures are returned, never
// retried.
type constructor func(ctx context.Context, name, runID string, s settings) (Sink, error)

var constructors = map[string]constructor{
	"postgres": newPostgres,
	"redis":    newRedis,
	"mqtt":     newMQTT,
	"socketio": newSocketIO,
}

// Kinds lists the supported sink kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(constructors))
	for k := range constructors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// New connects every configured sink. If any of them fails, the ones
// already connected are closed and the error is returned.
func New(ctx context.Context, specs []config.Sink, runID string) (*Multi, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Sink setup started.", "count", len(specs))

	sinks := make([]Sink, 0, len(specs))
	for _, spec := range specs {
		build, ok := constructors[spec.Kind]
		if !ok {
			_ = NewMulti(sinks...).Close()
			return nil, fmt.Errorf("unknown sink kind %q (supported: %s)", spec.Kind, strings.Join(Kinds(), ", "))
		}
		s, err := build(ctx, spec.Name, runID, settings(spec.Settings))
		if err != nil {
			_ = NewMulti(sinks...).Close()
			return nil, fmt.Errorf("failed to connect sink %s: %w", spec.Name, err)
		}
		logger.Info("🔌 Sink connected.", "kind", spec.Kind, "name", spec.Name)
		sinks = append(sinks, s)
	}

	logger.Debug("Sink setup finished.")
	return NewMulti(sinks...), nil
}
