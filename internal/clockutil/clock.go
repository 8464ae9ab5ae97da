package clockutil

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// d だけ待つ
// ctx がキャンセルされたら待ちを放棄して ctx.Err() を返す
func Sleep(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clock.After(d):
		return nil
	}
}
