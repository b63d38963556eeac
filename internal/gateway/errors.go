package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/errcode"
)

// APIError 承载一次失败调用的全部已知信息。
// Status 为 0 表示请求没有到达服务端（传输层失败）。
type APIError struct {
	Status  int
	Code    int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsAuthFailure 判断是否为认证失败（401/403）。
func (e *APIError) IsAuthFailure() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    int    `json:"code"`
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Code: errcode.SystemError}
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		apiErr.Code = errcode.AuthExpired
	case resp.StatusCode == http.StatusNotFound:
		apiErr.Code = errcode.ResourceMissing
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		apiErr.Code = errcode.ValidationError
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	var parsed errorBody
	if json.Unmarshal(body, &parsed) == nil {
		// 优先使用后端返回的具体校验信息，其次通用 error 字段。
		if parsed.Message != "" {
			apiErr.Message = parsed.Message
		} else if parsed.Error != "" {
			apiErr.Message = parsed.Error
		}
		if parsed.Code != 0 {
			apiErr.Code = parsed.Code
		}
	}
	return apiErr
}

// UserMessage 返回适合展示给用户的错误文案：
// 优先服务端给出的信息，缺失时退回 fallback。
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
