// Package mockapi 是内置的演示后端：单进程 gin 服务，
// 数据落在 SQLite，接口形状与真实网关一致，供离线演示与测试使用。
package mockapi

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/config"
)

// Server 封装 Mock 后端的 HTTP 服务生命周期。
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer 组装数据库、令牌服务与路由。dbPath 传 ":memory:"
// 可得到一次性后端。
func NewServer(cfg config.MockConfig, dbPath string, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := OpenDB(dbPath)
	if err != nil {
		return nil, err
	}

	tokens, err := NewTokenService(cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		return nil, err
	}

	router := NewRouter(logger)
	RegisterRoutes(router, db, tokens, logger, 0)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// Start 开始监听并阻塞，直到服务停止。
func (s *Server) Start() error {
	s.logger.Info("mock backend listening", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("mock backend serve: %w", err)
	}
	return nil
}

// StartBackground 在后台启动服务，返回实际监听地址。
// 端口传 0 时由系统分配，便于与客户端同进程运行。
func (s *Server) StartBackground() (string, error) {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return "", fmt.Errorf("mock backend listen: %w", err)
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("mock backend serve failed", slog.Any("error", err))
		}
	}()

	addr := listener.Addr().String()
	s.logger.Info("mock backend listening", slog.String("addr", addr))
	return addr, nil
}

// Shutdown 优雅停止服务。
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
