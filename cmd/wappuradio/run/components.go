package run

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/domain/model/nowplaying"
	"github.com/sobadon/wappuradio/domain/model/program"
	"github.com/sobadon/wappuradio/domain/repository"
	"github.com/sobadon/wappuradio/infrastructures/mqtt"
	"github.com/sobadon/wappuradio/infrastructures/sqlite"
	"github.com/sobadon/wappuradio/infrastructures/wappuradio"
	"github.com/sobadon/wappuradio/internal/config"
	"github.com/sobadon/wappuradio/internal/errutil"
	"github.com/sobadon/wappuradio/internal/latest"
	"github.com/sobadon/wappuradio/internal/logutil"
	"github.com/sobadon/wappuradio/presentation/httpapi"
	"github.com/sobadon/wappuradio/usecase"
	"golang.org/x/sync/errgroup"
)

const historyPruneInterval = 24 * time.Hour

// ポーラーとスケジューラーが値を流す先
type Cells struct {
	NowPlaying *latest.Cell[*nowplaying.NowPlaying]
	Program    *latest.Cell[*program.Program]
}

func NewCells() Cells {
	return Cells{
		NowPlaying: latest.New[*nowplaying.NowPlaying](nil),
		Program:    latest.New[*program.Program](nil),
	}
}

func StationConfig(config config.Config) wappuradio.Config {
	return wappuradio.Config{
		BaseURL:               config.BaseURL,
		ConnectTimeout:        config.ConnectTimeout,
		ReadTimeout:           config.ReadTimeout,
		DisallowUnknownFields: config.StrictJSON,
	}
}

// 各コンポーネントに名前付きのロガーを持たせる
func withComponent(ctx context.Context, name string) context.Context {
	return logutil.NewLogger().With().
		Str("component", name).
		Logger().WithContext(ctx)
}

// 設定に応じて常駐コンポーネントを g の上で動かし始める
// 失敗しうる準備（DB、ブローカー接続）をすべて済ませてから goroutine を起動するので、
// エラーが返ったときには g に何も積まれていない
// 返り値の cleanup は g.Wait() のあとに呼ぶ
func Start(ctx context.Context, g *errgroup.Group, config config.Config, cells Cells) (func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	var launches []func()

	clock := clockwork.NewRealClock()

	// ポーラーとスケジューラーは HTTP クライアントを共有しない
	nowPlayingStation, programStation := newStations(config)

	ucNowPlaying := usecase.NewNowPlaying(nowPlayingStation, clock)
	launches = append(launches, func() {
		g.Go(func() error {
			return ucNowPlaying.Run(withComponent(ctx, "nowplaying"), cells.NowPlaying)
		})
	})

	ucProgram := usecase.NewProgram(programStation, clock)
	launches = append(launches, func() {
		g.Go(func() error {
			return ucProgram.Run(withComponent(ctx, "program"), cells.Program)
		})
	})

	if config.SqlitePath != "" {
		launch, c, err := setupHistory(ctx, g, config, clock, cells)
		if err != nil {
			cleanup()
			return nil, err
		}
		launches = append(launches, launch)
		cleanups = append(cleanups, c)
	}

	if config.HTTPAddr != "" {
		router := httpapi.NewRouter(logutil.NewLogger().With().Str("component", "httpapi").Logger(), cells.NowPlaying, cells.Program)
		launches = append(launches, func() {
			g.Go(func() error {
				return httpapi.Serve(withComponent(ctx, "httpapi"), config.HTTPAddr, router)
			})
		})
	}

	if config.MQTTBroker != "" {
		launch, c, err := setupRelay(ctx, g, config, cells)
		if err != nil {
			cleanup()
			return nil, err
		}
		launches = append(launches, launch)
		cleanups = append(cleanups, c)
	}

	for _, launch := range launches {
		launch()
	}
	return cleanup, nil
}

// Now-Playing 用と番組表用に別々のクライアントを作る
func newStations(config config.Config) (repository.Station, repository.Station) {
	return wappuradio.New(StationConfig(config)), wappuradio.New(StationConfig(config))
}

func setupHistory(ctx context.Context, g *errgroup.Group, config config.Config, clock clockwork.Clock, cells Cells) (func(), func(), error) {
	db, err := sqlite.NewDB(config.SqlitePath)
	if err != nil {
		return nil, nil, err
	}
	err = sqlite.Setup(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	ucHistory := usecase.NewHistory(sqlite.New(db), clock)

	scheduler := gocron.NewScheduler(time.Local)
	jobPrune := func(ctx context.Context, job gocron.Job) {
		ctx = logutil.NewLogger().With().
			Int("job_count", job.RunCount()).
			Str("job", "prune_history").
			Logger().WithContext(ctx)
		zlog.Ctx(ctx).Info().Msg("job start")
		err := ucHistory.Prune(ctx, config.HistoryRetention)
		if err != nil {
			zlog.Ctx(ctx).Error().Msgf("%+v", err)
		}
	}
	_, err = scheduler.Every(historyPruneInterval).DoWithJobDetails(jobPrune, ctx)
	if err != nil {
		db.Close()
		return nil, nil, errors.Wrap(errutil.ErrScheduler, err.Error())
	}

	launch := func() {
		updates, unsubscribe := cells.NowPlaying.Subscribe()
		g.Go(func() error {
			defer unsubscribe()
			return ucHistory.Watch(withComponent(ctx, "history"), updates)
		})
		scheduler.StartAsync()
	}
	cleanup := func() {
		scheduler.Stop()
		db.Close()
	}
	return launch, cleanup, nil
}

func setupRelay(ctx context.Context, g *errgroup.Group, config config.Config, cells Cells) (func(), func(), error) {
	ctx = withComponent(ctx, "relay")
	notifier, err := mqtt.New(ctx, mqtt.Config{
		Broker:      config.MQTTBroker,
		ClientID:    config.MQTTClientID,
		TopicPrefix: config.MQTTTopicPrefix,
	})
	if err != nil {
		return nil, nil, err
	}

	ucRelay := usecase.NewRelay(notifier)
	launch := func() {
		nowPlayings, unsubscribeNowPlaying := cells.NowPlaying.Subscribe()
		programs, unsubscribeProgram := cells.Program.Subscribe()
		g.Go(func() error {
			defer unsubscribeNowPlaying()
			defer unsubscribeProgram()
			return ucRelay.Run(ctx, nowPlayings, programs)
		})
	}
	return launch, notifier.Close, nil
}

// キャンセルによる終了はエラーにしない
func IgnoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
