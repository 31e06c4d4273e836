package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/volsweep/internal/model"
)

// Sink receives every result table produced by a sweep.
type Sink interface {
	// Name identifies the sink in logs and errors.
	Name() string
	Publish(ctx context.Context, table *model.Table) error
	Close() error
}

// Multi fans a table out to several sinks.
type Multi struct {
	sinks []Sink
}

// NewMulti combines sinks. A Multi with no sinks publishes nothing.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Len reports how many sinks are combined.
func (m *Multi) Len() int {
	return len(m.sinks)
}

// Publish hands the table to every sink, even after one of them fails, and
// joins the failures.
func (m *Multi) Publish(ctx context.Context, table *model.Table) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Publish(ctx, table); err != nil {
			errs = append(errs, fmt.Errorf("sink %s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink in reverse order of creation.
func (m *Multi) Close() error {
	var errs []error
	for i := len(m.sinks) - 1; i >= 0; i-- {
		if err := m.sinks[i].Close(); err != nil {
			errs = append(errs, fmt.Errorf("sink %s: %w", m.sinks[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}
