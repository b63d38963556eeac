package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	serverRegisterOnce sync.Once

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aicoach",
			Subsystem: "mockapi",
			Name:      "request_duration_seconds",
			Help:      "Mock 后端 HTTP 请求耗时分布（秒）。",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aicoach",
			Subsystem: "mockapi",
			Name:      "requests_total",
			Help:      "Mock 后端 HTTP 请求总数。",
		},
		[]string{"method", "path", "status"},
	)
)

// GinMiddleware 为 Mock 后端路由注册 Prometheus 指标采集逻辑。
func GinMiddleware() gin.HandlerFunc {
	serverRegisterOnce.Do(func() {
		prometheus.MustRegister(requestDuration, requestTotal)
	})

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		}

		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestTotal.With(labels).Inc()
	}
}
