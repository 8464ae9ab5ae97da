// Package latest は「最新の値を 1 つだけ持つ」セルを提供する
//
// 生産側（ポーリングなど）は Set で値を上書きし、消費側（UI など）は
// Subscribe で変更を受け取る。購読チャネルは容量 1 で、読まれていない
// 古い値は新しい値に置き換えられる（キューではない）。
// セルは購読者を一切参照しないので、購読側が先に居なくなっても問題ない。
package latest

import "sync"

type Cell[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[int]chan T
	next  int
}

func New[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		subs:  make(map[int]chan T),
	}
}

func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	for _, ch := range c.subs {
		offer(ch, v)
	}
}

// 購読を開始する
// 登録直後に現在の値が 1 つ届く
// 返り値の cancel を呼ぶとチャネルは close される（複数回呼んでもよい）
func (c *Cell[T]) Subscribe() (<-chan T, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.next
	c.next++
	ch := make(chan T, 1)
	ch <- c.value
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// 送信は Set（ロック保持中）からしか行わないので、
// 捨ててから入れれば必ず入る
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
