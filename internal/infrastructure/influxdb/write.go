package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteWorkout records a logged workout as a time-series point.
//
// Tags carry the low-cardinality dimensions (owner, category, intensity)
// so dashboards can slice training volume per user and activity class.
// The write is non-blocking; data is batched and sent asynchronously.
// Distance is recorded only when positive.
func (c *Client) WriteWorkout(ownerID, category, intensity string, durationMinutes int, distance float64) {
	if !c.IsConnected() {
		return
	}

	tags := map[string]string{
		"owner_id": ownerID,
		"category": category,
	}
	if intensity != "" {
		tags["intensity"] = intensity
	}

	fields := map[string]interface{}{
		"duration_minutes": durationMinutes,
	}
	if distance > 0 {
		fields["distance"] = distance
	}

	point := write.NewPoint("workouts", tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for measurements that don't fit the helper methods, such as
// request counters or storage statistics.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
