package sink

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/volsweep/internal/ctxlog"
	"github.com/vk/volsweep/internal/model"
)

// socketIOSink emits one event per row to a live dashboard.
type socketIOSink struct {
	name  string
	runID string
	event string
	io    *socket.Socket
}

func newSocketIO(ctx context.Context, name, runID string, s settings) (Sink, error) {
	rawURL, err := s.required("socketio", "url")
	if err != nil {
		return nil, err
	}
	timeout, err := s.duration("socketio", "timeout", 15*time.Second)
	if err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx).With("sink", name, "url", rawURL)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if s.get("insecure_skip_verify", "false") == "true" {
		logger.Warn("Skipping TLS certificate verification.")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(s.get("namespace", "/"), opts)

	connected := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		connected <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connected <- err
	})

	logger.Debug("Initiating connection.")
	io.Connect()

	select {
	case err := <-connected:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}

	logger.Debug("Connected.", "sid", io.Id())
	return &socketIOSink{name: name, runID: runID, event: s.get("event", "sweep_result"), io: io}, nil
}

func (s *socketIOSink) Name() string { return s.name }

func (s *socketIOSink) Publish(ctx context.Context, table *model.Table) error {
	for _, rec := range Records(s.runID, table) {
		payload, err := asMap(rec)
		if err != nil {
			return err
		}
		s.io.Emit(s.event, payload)
	}
	ctxlog.FromContext(ctx).Debug("Rows emitted.", "sink", s.name, "event", s.event, "rows", table.Len())
	return nil
}

func (s *socketIOSink) Close() error {
	s.io.Disconnect()
	return nil
}

// asMap converts a record into the generic map the socket.io parser encodes.
func asMap(rec Record) (map[string]any, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return m, nil
}
