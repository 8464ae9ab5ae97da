package wappuradio

import (
	"context"
	"io"
	"sync/atomic"
	"time"
)

// 読み込みが timeout の間まったく進まなければリクエストを打ち切る
// 本文を受け取り続けている限りは打ち切らない（ソケットの読み込みタイムアウトと同じ考え方）
type idleTimeoutReader struct {
	r       io.Reader
	timeout time.Duration
	timer   *time.Timer
	fired   atomic.Bool
}

func newIdleTimeoutReader(r io.Reader, timeout time.Duration, cancel context.CancelFunc) *idleTimeoutReader {
	ir := &idleTimeoutReader{
		r:       r,
		timeout: timeout,
	}
	ir.timer = time.AfterFunc(timeout, func() {
		ir.fired.Store(true)
		cancel()
	})
	return ir
}

func (ir *idleTimeoutReader) Read(p []byte) (int, error) {
	n, err := ir.r.Read(p)
	if n > 0 && !ir.fired.Load() {
		ir.timer.Reset(ir.timeout)
	}
	return n, err
}

func (ir *idleTimeoutReader) TimedOut() bool {
	return ir.fired.Load()
}

func (ir *idleTimeoutReader) Stop() {
	ir.timer.Stop()
}
