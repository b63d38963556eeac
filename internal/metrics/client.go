package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	clientRegisterOnce sync.Once

	outboundDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aicoach",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "出站 HTTP 请求耗时分布（秒）。",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	outboundTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aicoach",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "出站 HTTP 请求总数。",
		},
		[]string{"method", "path", "status"},
	)

	outboundInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "aicoach",
			Subsystem: "client",
			Name:      "in_flight_requests",
			Help:      "当前在途的出站 HTTP 请求数量。",
		},
	)
)

// ObserveRequest 记录一次出站请求；status 为 0 表示传输层失败。
func ObserveRequest(method, path string, status int, elapsed time.Duration) {
	clientRegisterOnce.Do(func() {
		prometheus.MustRegister(outboundDuration, outboundTotal, outboundInFlight)
	})

	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	outboundDuration.With(labels).Observe(elapsed.Seconds())
	outboundTotal.With(labels).Inc()
}

// RequestStarted/RequestFinished 维护在途请求计数。
func RequestStarted() {
	clientRegisterOnce.Do(func() {
		prometheus.MustRegister(outboundDuration, outboundTotal, outboundInFlight)
	})
	outboundInFlight.Inc()
}

func RequestFinished() {
	outboundInFlight.Dec()
}
