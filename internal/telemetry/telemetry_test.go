package telemetry

import (
	"testing"
	"time"

	"foors"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestNewRegistersInstrumentsAgainstProvider(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := New(provider)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m == nil {
		t.Fatal("New() returned nil Metrics")
	}
}

func TestNewWithNilProviderUsesDefault(t *testing.T) {
	if _, err := New(nil); err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
}

func TestRecordMethodsDoNotPanic(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := New(provider)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	m.RecordTick(5*time.Millisecond, 3, 2)
	m.RecordMessageDelivered(foors.Normal)
	m.RecordMessageDelivered(foors.TriageMessage)
	m.RecordTriageQueued()
}
