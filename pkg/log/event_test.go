package log

import (
	"testing"
	"time"
)

func TestLayerString(t *testing.T) {
	tests := []struct {
		layer Layer
		want  string
	}{
		{LayerDriver, "DRIVER"},
		{LayerNetif, "NETIF"},
		{LayerEvents, "EVENTS"},
		{LayerLifecycle, "LIFECYCLE"},
		{Layer(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.layer.String(); got != tt.want {
			t.Errorf("Layer(%d).String(): got %q, want %q", tt.layer, got, tt.want)
		}
	}
}

func TestParseLayerAndCategory(t *testing.T) {
	if l, ok := ParseLayer("NETIF"); !ok || l != LayerNetif {
		t.Errorf("ParseLayer(NETIF): got %v %v", l, ok)
	}
	if _, ok := ParseLayer("WIRE"); ok {
		t.Error("ParseLayer(WIRE) should fail")
	}
	if c, ok := ParseCategory("ERROR"); !ok || c != CategoryError {
		t.Errorf("ParseCategory(ERROR): got %v %v", c, ok)
	}
}

func TestEventRoundTripKeepsPayload(t *testing.T) {
	status := 259
	ts := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	in := Event{
		Timestamp: ts,
		SessionID: "5f1c",
		Layer:     LayerDriver,
		Category:  CategoryError,
		PHY:       "IP101",
		Error: &ErrorEventData{
			Layer:        LayerDriver,
			Message:      "install failed",
			Code:         "DRIVER_INSTALL_FAILED",
			DriverStatus: &status,
			Op:           "install",
			Fatal:        true,
		},
	}

	data, err := EncodeEvent(in)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	out, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !out.Timestamp.Equal(ts) {
		t.Errorf("Timestamp: got %v, want %v", out.Timestamp, ts)
	}
	if out.Error == nil {
		t.Fatal("Error payload lost")
	}
	if out.Error.DriverStatus == nil || *out.Error.DriverStatus != 259 {
		t.Errorf("DriverStatus: got %v, want 259", out.Error.DriverStatus)
	}
	if out.StateChange != nil || out.Link != nil {
		t.Error("unexpected payloads set")
	}
}
