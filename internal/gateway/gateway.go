// Package gateway 是所有出站 REST 调用的统一入口：
// 负责附加 Bearer 令牌、注入 Correlation ID、采集指标，
// 并在令牌被后端拒绝时设置全局的会话过期标记。
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/metrics"
)

// TokenSource 提供当前访问令牌；为空表示未登录。
type TokenSource interface {
	Token() string
}

// publicPaths 不附加认证头的公开路径。
var publicPaths = map[string]bool{
	"/auth/login":    true,
	"/auth/register": true,
}

// Client 封装 http.Client，所有 store 共享同一个实例。
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger

	sessionExpired atomic.Bool
}

// New 构造网关客户端。baseURL 形如 http://host:port/api。
func New(baseURL string, timeout time.Duration, tokens TokenSource, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// SessionExpired 返回会话过期标记；由路由守卫等调用方观察。
func (c *Client) SessionExpired() bool { return c.sessionExpired.Load() }

// ClearSessionExpired 在重新认证后复位标记。
func (c *Client) ClearSessionExpired() { c.sessionExpired.Store(false) }

// GetJSON 发送 GET 请求并解析 JSON 响应到 out（可为 nil）。
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// PostJSON 发送 POST 请求。body 为 nil 时不携带请求体。
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

// PutJSON 发送 PUT 请求。
func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, body, out)
}

// Delete 发送 DELETE 请求。
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, path, out)
}

// PostMultipart 上传单个文件（头像、简历）。
func (c *Client) PostMultipart(ctx context.Context, path, field, filename string, content io.Reader, out any) error {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, path, out)
}

func (c *Client) send(req *http.Request, path string, out any) error {
	correlationID := uuid.NewString()
	req.Header.Set("X-Correlation-ID", correlationID)

	authed := !publicPaths[path]
	if authed {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger := c.logger.With(
		slog.String("correlation_id", correlationID),
		slog.String("method", req.Method),
		slog.String("path", path),
	)

	metrics.RequestStarted()
	defer metrics.RequestFinished()

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveRequest(req.Method, path, 0, elapsed)
		logger.Info("request failed", slog.Any("error", err))
		return &APIError{Err: err}
	}
	defer resp.Body.Close()

	metrics.ObserveRequest(req.Method, path, resp.StatusCode, elapsed)
	logger.Info("request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", elapsed),
	)

	if resp.StatusCode >= 400 {
		apiErr := decodeAPIError(resp)
		// 认证被拒：只设置一次过期标记，不做自动重试，跳转留给观察方。
		if authed && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			if c.sessionExpired.CompareAndSwap(false, true) {
				logger.Info("session marked expired")
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
