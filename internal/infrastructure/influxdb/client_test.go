package influxdb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fittrack/fittrack-core/internal/infrastructure/config"
	"github.com/fittrack/fittrack-core/internal/infrastructure/influxdb"
)

func TestConnect_Disabled(t *testing.T) {
	cfg := config.MetricsConfig{Enabled: false}

	_, err := influxdb.Connect(cfg)
	if !errors.Is(err, influxdb.ErrDisabled) {
		t.Errorf("Connect() error = %v, want ErrDisabled", err)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	cfg := config.MetricsConfig{
		Enabled: true,
		URL:     "http://127.0.0.1:1", // nothing listens here
		Token:   "test-token",
		Org:     "fittrack",
		Bucket:  "metrics",
	}

	_, err := influxdb.Connect(cfg)
	if !errors.Is(err, influxdb.ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

func TestNilClient_SafeNoOps(t *testing.T) {
	// A nil client stands in for "metrics disabled"; every call must be safe.
	var c *influxdb.Client

	if c.IsConnected() {
		t.Error("nil client should report not connected")
	}

	c.WriteWorkout("usr-001", "running", "medium", 30, 5.0)
	c.WritePoint("requests", map[string]string{"path": "/health"}, map[string]interface{}{"count": 1})
	c.Flush()

	if err := c.Close(); err != nil {
		t.Errorf("Close() on nil client error = %v", err)
	}
}

func TestHealthCheck_NotConnected(t *testing.T) {
	var c *influxdb.Client
	// guard against nil deref via IsConnected path
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("HealthCheck() panicked: %v", r)
		}
	}()

	err := c.HealthCheck(context.Background())
	if !errors.Is(err, influxdb.ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}
}
