package usecase

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/program"
	"github.com/sobadon/wappuradio/domain/repository"
	"github.com/sobadon/wappuradio/internal/clockutil"
	"github.com/sobadon/wappuradio/internal/latest"
)

const (
	// 番組表の取得に失敗したとき
	programRetryAfterFetchFailure = 1 * time.Minute

	// 番組表はあるが、放送中の番組が見つからないとき
	programRetryAfterNotFound = 5 * time.Minute

	// 番組終了からこれだけ過ぎたら次の番組を探す
	programEndMargin = 30 * time.Second

	// 境界付近で空回りしないよう、最低でもこれだけは待つ
	programMinWait = 30 * time.Second
)

type ucProgram struct {
	station repository.Station
	clock   clockwork.Clock

	// 開始日時の昇順
	// 一度取得できたらインスタンスが生きている間は使い回す
	// Run からしか触らないのでロックはしない
	schedule []program.Program
}

func NewProgram(station repository.Station, clock clockwork.Clock) *ucProgram {
	return &ucProgram{
		station: station,
		clock:   clock,
	}
}

// キャッシュがあればそれを返し、なければ取得する
// 失敗はキャッシュしない
func (u *ucProgram) loadSchedule(ctx context.Context) ([]program.Program, bool) {
	if u.schedule != nil {
		return u.schedule, true
	}

	log.Ctx(ctx).Debug().Msg("refreshing schedule")
	pgrams, ok := u.station.GetPrograms(ctx)
	if !ok {
		return nil, false
	}
	u.schedule = program.SortByStart(pgrams)
	return u.schedule, true
}

// 放送中の番組と、次に見直すまでの待ち時間
func (u *ucProgram) Step(ctx context.Context) (*program.Program, time.Duration) {
	schedule, ok := u.loadSchedule(ctx)
	if !ok {
		return nil, programRetryAfterFetchFailure
	}

	// 番組探しと待ち時間の計算は同じ時刻で行う
	now := u.clock.Now()
	current := program.FindCurrent(schedule, now)
	if current == nil {
		log.Ctx(ctx).Warn().Msg("program not found for current time")
		return nil, programRetryAfterNotFound
	}

	return current, waitUntilNextProgram(*current, now)
}

// 番組終了 + マージンまで待つ
// ただし programMinWait 未満にはしない
func waitUntilNextProgram(current program.Program, now time.Time) time.Duration {
	wait := current.End.Add(programEndMargin).Sub(now)
	if wait < programMinWait {
		return programMinWait
	}
	return wait
}

// Step して cell に流し、待つ、を繰り返す
// ctx がキャンセルされるまで戻らない
func (u *ucProgram) Run(ctx context.Context, cell *latest.Cell[*program.Program]) error {
	log.Ctx(ctx).Debug().Msg("start program scheduler")
	for {
		current, wait := u.Step(ctx)
		cell.Set(current)
		if current != nil {
			log.Ctx(ctx).Debug().Msgf("current program: %s (next check in %s)", current.Title, wait)
		}

		err := clockutil.Sleep(ctx, u.clock, wait)
		if err != nil {
			log.Ctx(ctx).Debug().Msg("stop program scheduler")
			return err
		}
	}
}
