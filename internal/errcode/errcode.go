package errcode

// 错误码约定：
// - 0：无错误
// - 4xxx：业务可恢复错误（提示用户后流程可继续）
// - 5xxx：系统/传输错误（需要中断当前操作）
const (
	OK                 = 0
	ValidationError    = 4001
	PreconditionFailed = 4002
	ResourceMissing    = 4004
	AuthExpired        = 4011
	SystemError        = 5000
	TransportError     = 5001
)
