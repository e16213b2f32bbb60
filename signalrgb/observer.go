package signalrgb

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Observer provides hooks for monitoring client operations. Implement it
// to track request latencies or cache behavior. Observer methods are
// called inline and should be fast and non-blocking.
type Observer interface {
	// OnRequestStart is called when an HTTP request starts.
	OnRequestStart(method, path string)

	// OnRequestEnd is called when an HTTP request completes, with the
	// time taken and the error, if any.
	OnRequestEnd(method, path string, duration time.Duration, err error)

	// OnCacheHit is called when the effect cache serves a read without
	// touching the network.
	OnCacheHit(key string)

	// OnCacheMiss is called when an effect cache read triggers a fill.
	OnCacheMiss(key string)
}

// NoopObserver is the default Observer; it does nothing.
type NoopObserver struct{}

func (n *NoopObserver) OnRequestStart(method, path string) {}
func (n *NoopObserver) OnRequestEnd(method, path string, duration time.Duration, err error) {
}
func (n *NoopObserver) OnCacheHit(key string)  {}
func (n *NoopObserver) OnCacheMiss(key string) {}

// LogObserver logs every request and cache access through logrus.
// Requests are logged at debug level, failures at warn.
//
//	log := logrus.New()
//	log.SetLevel(logrus.DebugLevel)
//	config := signalrgb.DefaultConfig().
//	    WithObserver(signalrgb.NewLogObserver(log))
type LogObserver struct {
	log logrus.FieldLogger
}

// NewLogObserver creates an observer writing to the given logger.
func NewLogObserver(log logrus.FieldLogger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnRequestStart(method, path string) {
	o.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	}).Debug("request start")
}

func (o *LogObserver) OnRequestEnd(method, path string, duration time.Duration, err error) {
	fields := logrus.Fields{
		"method":   method,
		"path":     path,
		"duration": duration,
	}
	if err != nil {
		o.log.WithFields(fields).WithError(err).Warn("request failed")
		return
	}
	o.log.WithFields(fields).Debug("request done")
}

func (o *LogObserver) OnCacheHit(key string) {
	o.log.WithField("key", key).Debug("cache hit")
}

func (o *LogObserver) OnCacheMiss(key string) {
	o.log.WithField("key", key).Debug("cache miss")
}

// MetricsCollector is a thread-safe in-memory Observer that counts
// requests, latencies, errors, and cache hit rates. It is intended for
// debugging and tests; export to a real monitoring system by implementing
// Observer directly.
type MetricsCollector struct {
	mu           sync.RWMutex
	requestCount map[string]int64
	errorCount   map[string]int64
	latencies    map[string][]time.Duration
	cacheHits    int64
	cacheMisses  int64
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		latencies:    make(map[string][]time.Duration),
	}
}

func (m *MetricsCollector) OnRequestStart(method, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[method+" "+path]++
}

func (m *MetricsCollector) OnRequestEnd(method, path string, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := method + " " + path
	m.latencies[key] = append(m.latencies[key], duration)
	if err != nil {
		m.errorCount[key]++
	}
}

func (m *MetricsCollector) OnCacheHit(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *MetricsCollector) OnCacheMiss(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses++
}

// RequestCount returns the number of requests issued for an endpoint,
// keyed as "METHOD /path".
func (m *MetricsCollector) RequestCount(endpoint string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount[endpoint]
}

// TotalRequests returns the number of requests issued across all
// endpoints.
func (m *MetricsCollector) TotalRequests() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var total int64
	for _, n := range m.requestCount {
		total += n
	}
	return total
}

// CacheHitRate returns the fraction of cache reads served without a
// network fill, or 0 when no reads happened.
func (m *MetricsCollector) CacheHitRate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := m.cacheHits + m.cacheMisses
	if total == 0 {
		return 0
	}
	return float64(m.cacheHits) / float64(total)
}
