// Package influxdb provides optional training-metrics export for FitTrack Core.
//
// It wraps the official influxdb-client-go v2 library with connection
// management, non-blocking batched writes, and health monitoring. When
// metrics export is disabled in configuration, Connect returns
// ErrDisabled and the service runs without it; workout logging never
// depends on the metrics store being reachable.
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.Metrics)
//	if err != nil {
//	    // run without export
//	}
//	defer client.Close()
//
//	client.WriteWorkout("usr-1a2b3c4d", "running", "medium", 30, 5.2)
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes; batch
// errors are delivered via the SetOnError callback.
package influxdb
