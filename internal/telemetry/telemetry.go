// Package telemetry reports operational metrics for a running simulation
// through OpenTelemetry.
package telemetry

import (
	"context"
	"time"

	"foors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Metrics implements sim.Telemetry over an OpenTelemetry MeterProvider.
type Metrics struct {
	tickDuration     metric.Float64Histogram
	tickNodes        metric.Int64Histogram
	tickMessages     metric.Int64Histogram
	messagesDelivered metric.Int64Counter
	triagesQueued    metric.Int64Counter
}

// New builds a Metrics reporter registered against the given
// MeterProvider's "foors" meter. Passing nil builds a fresh SDK
// MeterProvider with no reader attached, so nothing recorded is exported.
func New(provider metric.MeterProvider) (*Metrics, error) {
	if provider == nil {
		provider = sdkmetric.NewMeterProvider()
	}
	meter := provider.Meter("foors")

	tickDuration, err := meter.Float64Histogram(
		"foors.tick.duration",
		metric.WithDescription("wall-clock time spent inside one Tick call"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	tickNodes, err := meter.Int64Histogram(
		"foors.tick.node_count",
		metric.WithDescription("node count observed at the end of a tick"),
	)
	if err != nil {
		return nil, err
	}
	tickMessages, err := meter.Int64Histogram(
		"foors.tick.message_count",
		metric.WithDescription("in-flight message count observed at the end of a tick"),
	)
	if err != nil {
		return nil, err
	}
	messagesDelivered, err := meter.Int64Counter(
		"foors.messages.delivered",
		metric.WithDescription("messages that reached their destination, by kind"),
	)
	if err != nil {
		return nil, err
	}
	triagesQueued, err := meter.Int64Counter(
		"foors.triages.queued",
		metric.WithDescription("triage reports queued because their origin node was isolated"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		tickDuration:      tickDuration,
		tickNodes:         tickNodes,
		tickMessages:      tickMessages,
		messagesDelivered: messagesDelivered,
		triagesQueued:     triagesQueued,
	}, nil
}

// RecordTick reports one completed tick's cost and resulting world size.
func (m *Metrics) RecordTick(d time.Duration, nodeCount, messageCount int) {
	ctx := context.Background()
	m.tickDuration.Record(ctx, d.Seconds())
	m.tickNodes.Record(ctx, int64(nodeCount))
	m.tickMessages.Record(ctx, int64(messageCount))
}

// RecordMessageDelivered reports one message reaching its destination.
func (m *Metrics) RecordMessageDelivered(kind foors.MessageKind) {
	m.messagesDelivered.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind.String())))
}

// RecordTriageQueued reports one triage report being queued for an
// isolated node instead of sent immediately.
func (m *Metrics) RecordTriageQueued() {
	m.triagesQueued.Add(context.Background(), 1)
}
