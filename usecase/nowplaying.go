package usecase

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/nowplaying"
	"github.com/sobadon/wappuradio/domain/repository"
	"github.com/sobadon/wappuradio/internal/clockutil"
	"github.com/sobadon/wappuradio/internal/latest"
)

// 成否にかかわらずこの間隔で取りにいく
const nowPlayingPollInterval = 20 * time.Second

type ucNowPlaying struct {
	station repository.Station
	clock   clockwork.Clock
}

func NewNowPlaying(station repository.Station, clock clockwork.Clock) *ucNowPlaying {
	return &ucNowPlaying{
		station: station,
		clock:   clock,
	}
}

// 1 回分の取得と、次に取りにいくまでの待ち時間
func (u *ucNowPlaying) Step(ctx context.Context) (*nowplaying.NowPlaying, time.Duration) {
	return u.station.GetNowPlaying(ctx), nowPlayingPollInterval
}

// 取得して cell に流し、待つ、を繰り返す
// ctx がキャンセルされるまで戻らない
func (u *ucNowPlaying) Run(ctx context.Context, cell *latest.Cell[*nowplaying.NowPlaying]) error {
	log.Ctx(ctx).Debug().Msg("start now playing poller")
	for {
		np, wait := u.Step(ctx)
		cell.Set(np)

		err := clockutil.Sleep(ctx, u.clock, wait)
		if err != nil {
			log.Ctx(ctx).Debug().Msg("stop now playing poller")
			return err
		}
	}
}
