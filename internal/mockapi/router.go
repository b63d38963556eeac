package mockapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/metrics"
)

// NewRouter 构建 Gin 路由引擎：恢复、关联 ID、请求日志与指标中间件，
// 外加健康检查端点。
func NewRouter(logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		CorrelationIDMiddleware(),
		SlogLoggerMiddleware(logger),
		metrics.GinMiddleware(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
