package beep

import (
	"sync/atomic"

	"github.com/gopxl/beep"
)

// 流したサンプル数を数える
// スピーカーの goroutine から Stream が呼ばれ、別の goroutine から Samples が読まれる
type countingStreamer struct {
	beep.Streamer
	samples atomic.Int64
}

func (c *countingStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := c.Streamer.Stream(samples)
	c.samples.Add(int64(n))
	return n, ok
}

func (c *countingStreamer) Samples() int64 {
	return c.samples.Load()
}
