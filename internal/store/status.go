// Package store 存放各 state holder 共享的基础设施：
// 状态枚举、令牌持有器与乐观更新辅助函数。
package store

// Status 表示一次异步操作的生命周期状态。
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)
