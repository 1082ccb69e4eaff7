package cache

// HealthStatus classifies cache utilization.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
)

// Utilization thresholds for health classification.
const (
	warningUtilization  = 0.70
	criticalUtilization = 0.90
)

// Stats is a point-in-time snapshot of one cache instance.
type Stats struct {
	Size        int     `json:"size"`
	MaxSize     int     `json:"max_size"`
	Hits        int64   `json:"hits"`
	Misses      int64   `json:"misses"`
	Evictions   int64   `json:"evictions"`
	Expirations int64   `json:"expirations"`
	HitRate     float64 `json:"hit_rate"`
}

// Health is the derived memory-health report for one cache instance.
type Health struct {
	Status         HealthStatus `json:"status"`
	Utilization    float64      `json:"utilization"`
	Recommendation string       `json:"recommendation,omitempty"`
}

// Stats snapshots the running counters. HitRate is 0 before any request.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := Stats{
		Size:        len(c.entries),
		MaxSize:     c.maxSize,
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		Expirations: c.expirations,
	}
	if total := stats.Hits + stats.Misses; total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total)
	}
	return stats
}

// Health derives the utilization status from the current size.
func (c *Cache[K, V]) Health() Health {
	stats := c.Stats()

	utilization := 0.0
	if stats.MaxSize > 0 {
		utilization = float64(stats.Size) / float64(stats.MaxSize)
	}

	health := Health{Utilization: utilization}
	switch {
	case utilization >= criticalUtilization:
		health.Status = HealthCritical
		health.Recommendation = "cache is near capacity; raise max_size or shorten TTLs"
	case utilization >= warningUtilization:
		health.Status = HealthWarning
	default:
		health.Status = HealthHealthy
	}
	return health
}
