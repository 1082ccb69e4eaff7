// Package metrics emits application metrics through the gofulmen telemetry
// system following Prometheus conventions.
package metrics

import (
	"time"

	"github.com/qiminglab/qiming/internal/core/cache"
	"github.com/qiminglab/qiming/internal/observability"
)

// Metric names.
const (
	ScoresTotal         = "app_name_scores_total"
	GenerationsTotal    = "app_generations_total"
	GenerationDuration  = "app_generation_duration_ms"
	GenerationResults   = "app_generation_results"
	CacheHitRate        = "app_cache_hit_rate"
	CacheUtilization    = "app_cache_utilization"
	HealthCheckTotal    = "app_health_check_total"
	HealthCheckDuration = "app_health_check_duration_ms"
	ServerStartTime     = "app_server_start_time_seconds"
)

// RecordScore records one composite scoring call.
func RecordScore(success bool, withChart bool) {
	if observability.TelemetrySystem == nil {
		return
	}
	status := "success"
	if !success {
		status = "failure"
	}
	chart := "none"
	if withChart {
		chart = "supplied"
	}
	_ = observability.TelemetrySystem.Counter(ScoresTotal, 1, map[string]string{
		"status": status,
		"chart":  chart,
	})
}

// RecordGeneration records one candidate search with its latency and result
// count.
func RecordGeneration(success bool, duration time.Duration, results int) {
	if observability.TelemetrySystem == nil {
		return
	}
	status := "success"
	if !success {
		status = "failure"
	}
	_ = observability.TelemetrySystem.Counter(GenerationsTotal, 1, map[string]string{
		"status": status,
	})
	_ = observability.TelemetrySystem.Histogram(GenerationDuration, duration, map[string]string{
		"status": status,
	})
	_ = observability.TelemetrySystem.Gauge(GenerationResults, float64(results), nil)
}

// RecordCacheStats publishes hit rate and utilization gauges per cache
// kind.
func RecordCacheStats(kind cache.Kind, stats cache.Stats) {
	if observability.TelemetrySystem == nil {
		return
	}
	labels := map[string]string{"kind": string(kind)}
	_ = observability.TelemetrySystem.Gauge(CacheHitRate, stats.HitRate, labels)
	if stats.MaxSize > 0 {
		_ = observability.TelemetrySystem.Gauge(CacheUtilization,
			float64(stats.Size)/float64(stats.MaxSize), labels)
	}
}

// RecordHealthCheck records a health check execution.
func RecordHealthCheck(checkName string, healthy bool, duration time.Duration) {
	if observability.TelemetrySystem == nil {
		return
	}
	status := "healthy"
	if !healthy {
		status = "unhealthy"
	}
	_ = observability.TelemetrySystem.Counter(HealthCheckTotal, 1, map[string]string{
		"check":  checkName,
		"status": status,
	})
	_ = observability.TelemetrySystem.Histogram(HealthCheckDuration, duration, map[string]string{
		"check": checkName,
	})
}

// SetServerStartTime records the server start time as a Unix timestamp.
func SetServerStartTime(timestamp int64) {
	if observability.TelemetrySystem == nil {
		return
	}
	_ = observability.TelemetrySystem.Gauge(ServerStartTime, float64(timestamp), nil)
}
