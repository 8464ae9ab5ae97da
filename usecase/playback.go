package usecase

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/playback"
	"github.com/sobadon/wappuradio/domain/repository"
	"github.com/sobadon/wappuradio/internal/clockutil"
	"github.com/sobadon/wappuradio/internal/latest"
)

const elapsedSampleInterval = 1 * time.Second

type ucPlayback struct {
	player repository.Player
	clock  clockwork.Clock
}

func NewPlayback(player repository.Player, clock clockwork.Clock) *ucPlayback {
	return &ucPlayback{
		player: player,
		clock:  clock,
	}
}

// 再生状態が変わるたびに「バッファリング中か」を cell に流す
// 購読より前の変化を取りこぼさないよう、購読直後にも一度流す
// ctx がキャンセルされたら購読をやめて戻る
func (u *ucPlayback) ObserveLoading(ctx context.Context, cell *latest.Cell[bool]) error {
	events, cancel := u.player.Subscribe()
	defer cancel()
	cell.Set(u.player.State() == playback.StateBuffering)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				log.Ctx(ctx).Debug().Msg("player events closed")
				return nil
			}
			if ev.ContainsAny(playback.EventPlaybackStateChanged) {
				cell.Set(u.player.State() == playback.StateBuffering)
			}
		}
	}
}

// 1 秒ごとに再生位置を cell に流す
// 先に待ってから読む
func (u *ucPlayback) SampleElapsed(ctx context.Context, cell *latest.Cell[time.Duration]) error {
	for {
		err := clockutil.Sleep(ctx, u.clock, elapsedSampleInterval)
		if err != nil {
			return err
		}
		cell.Set(u.player.Position())
	}
}

func (u *ucPlayback) TogglePlayPause() {
	u.player.TogglePlayPause()
}

func (u *ucPlayback) SeekToLive(ctx context.Context) error {
	return u.player.SeekToLive(ctx)
}

func (u *ucPlayback) IsPlaying() bool {
	return u.player.IsPlaying()
}
