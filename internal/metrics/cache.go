package metrics

// RecordCacheHit increments the hit counter for the named cache
func (m *Metrics) RecordCacheHit(cache string) {
	m.safeExecute("RecordCacheHit", func() {
		m.CacheHitsTotal.WithLabelValues(cache).Inc()
	})
}

// RecordCacheMiss increments the miss counter for the named cache
func (m *Metrics) RecordCacheMiss(cache string) {
	m.safeExecute("RecordCacheMiss", func() {
		m.CacheMissesTotal.WithLabelValues(cache).Inc()
	})
}
