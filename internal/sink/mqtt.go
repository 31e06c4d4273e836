package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/vk/volsweep/internal/ctxlog"
	"github.com/vk/volsweep/internal/model"
)

// mqttSink publishes each row to <topic>/<skipmode>.
type mqttSink struct {
	name    string
	runID   string
	topic   string
	qos     byte
	timeout time.Duration
	client  mqtt.Client
}

func newMQTT(ctx context.Context, name, runID string, s settings) (Sink, error) {
	broker, err := s.required("mqtt", "broker")
	if err != nil {
		return nil, err
	}
	qos, err := s.integer("mqtt", "qos", 0)
	if err != nil {
		return nil, err
	}
	if qos < 0 || qos > 2 {
		return nil, fmt.Errorf("mqtt sink: qos must be 0, 1 or 2, got %d", qos)
	}
	timeout, err := s.duration("mqtt", "timeout", 10*time.Second)
	if err != nil {
		return nil, err
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(s.get("client_id", "volsweep-"+runID))
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(30 * time.Second)
	opts.SetConnectTimeout(timeout)
	if user := s.get("username", ""); user != "" {
		opts.SetUsername(user)
		opts.SetPassword(s.get("password", ""))
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		client.Disconnect(0)
		return nil, fmt.Errorf("timed out after %s connecting to %s", timeout, broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", broker, err)
	}
	ctxlog.FromContext(ctx).Debug("MQTT connected.", "sink", name, "broker", broker)

	return &mqttSink{
		name:    name,
		runID:   runID,
		topic:   s.get("topic", "volsweep"),
		qos:     byte(qos),
		timeout: timeout,
		client:  client,
	}, nil
}

func (m *mqttSink) Name() string { return m.name }

func (m *mqttSink) topicFor(mode model.SkipMode) string {
	return fmt.Sprintf("%s/%d", m.topic, int(mode))
}

func (m *mqttSink) Publish(ctx context.Context, table *model.Table) error {
	topic := m.topicFor(table.SkipMode)
	for _, rec := range Records(m.runID, table) {
		if err := ctx.Err(); err != nil {
			return err
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		token := m.client.Publish(topic, m.qos, false, b)
		if !token.WaitTimeout(m.timeout) {
			return fmt.Errorf("timed out publishing to %s", topic)
		}
		if err := token.Error(); err != nil {
			return fmt.Errorf("failed to publish to %s: %w", topic, err)
		}
	}
	ctxlog.FromContext(ctx).Debug("Rows published.", "sink", m.name, "topic", topic, "rows", table.Len())
	return nil
}

func (m *mqttSink) Close() error {
	m.client.Disconnect(250)
	return nil
}
