package usecase

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/nowplaying"
	"github.com/sobadon/wappuradio/domain/model/program"
	"github.com/sobadon/wappuradio/domain/repository"
)

type ucRelay struct {
	notifier repository.Notifier
}

func NewRelay(notifier repository.Notifier) *ucRelay {
	return &ucRelay{
		notifier: notifier,
	}
}

// 曲と番組の購読チャネルを読み、変わったときだけ通知する
// 最初に届いた値は必ず通知する
// 通知の失敗はログに残して続ける
func (u *ucRelay) Run(ctx context.Context, nowPlayings <-chan *nowplaying.NowPlaying, programs <-chan *program.Program) error {
	var (
		lastNowPlaying *nowplaying.NowPlaying
		lastProgram    *program.Program
		sentNowPlaying bool
		sentProgram    bool
	)

	for nowPlayings != nil || programs != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case np, ok := <-nowPlayings:
			if !ok {
				nowPlayings = nil
				continue
			}
			if sentNowPlaying && sameNowPlaying(lastNowPlaying, np) {
				continue
			}
			err := u.notifier.NotifyNowPlaying(ctx, np)
			if err != nil {
				log.Ctx(ctx).Error().Msgf("%+v", err)
				continue
			}
			lastNowPlaying, sentNowPlaying = np, true

		case pgram, ok := <-programs:
			if !ok {
				programs = nil
				continue
			}
			if sentProgram && sameProgram(lastProgram, pgram) {
				continue
			}
			err := u.notifier.NotifyProgram(ctx, pgram)
			if err != nil {
				log.Ctx(ctx).Error().Msgf("%+v", err)
				continue
			}
			lastProgram, sentProgram = pgram, true
		}
	}
	return nil
}

func sameNowPlaying(a, b *nowplaying.NowPlaying) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Song == b.Song
}

func sameProgram(a, b *program.Program) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && a.Start.Equal(b.Start) && a.End.Equal(b.End) && a.Timestamp.Equal(b.Timestamp)
}
