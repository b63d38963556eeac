// Package poller 提供可取消的定时轮询句柄。
// 轮询方不再“发射后不管”：持有句柄的一方可以随时 Stop，
// 探测函数返回 true 或上下文取消时轮询自行结束。
package poller

import (
	"context"
	"sync"
	"time"
)

// ProbeFunc 执行一次探测；返回 true 表示轮询应当结束。
type ProbeFunc func(ctx context.Context) (done bool)

// Handle 代表一个进行中的轮询任务。
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start 以固定间隔执行 probe，直到 probe 返回 true、Stop 被调用
// 或 ctx 取消。第一次探测在一个间隔之后执行。
func Start(ctx context.Context, interval time.Duration, probe ProbeFunc) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		defer cancel()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if probe(ctx) {
					return
				}
			}
		}
	}()

	return h
}

// Stop 取消轮询并等待后台协程退出。幂等。
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done 返回轮询结束信号，供测试与观察方等待。
func (h *Handle) Done() <-chan struct{} { return h.done }
