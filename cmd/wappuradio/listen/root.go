package listen

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/sobadon/wappuradio/cmd/wappuradio/run"
	"github.com/sobadon/wappuradio/infrastructures/beep"
	"github.com/sobadon/wappuradio/internal/config"
	"github.com/sobadon/wappuradio/internal/latest"
	"github.com/sobadon/wappuradio/internal/logutil"
	"github.com/sobadon/wappuradio/presentation/tui"
	"github.com/sobadon/wappuradio/usecase"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "listen",
		Short: "play the stream in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listen(cmd.Context())
		},
	}
	return rootCmd
}

func listen(ctx context.Context) error {
	// 画面を使うので、ログの出力先が決まるまでは何も出さない
	config, err := config.Load(zerolog.Nop(), ".env")
	if err != nil {
		return err
	}
	logutil.SetLevel(config.LogLevel)
	logFile, err := logutil.RedirectToFile(config.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log := logutil.NewLogger()
	log.Info().Msg("start")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(log.WithContext(ctx))
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	cells := run.NewCells()
	cleanup, err := run.Start(gctx, g, config, cells)
	if err != nil {
		return err
	}
	defer cleanup()

	player := beep.New()
	defer player.Close()

	ucPlayback := usecase.NewPlayback(player, clockwork.NewRealClock())
	loading := latest.New(true)
	elapsed := latest.New(time.Duration(0))
	g.Go(func() error {
		return ucPlayback.ObserveLoading(gctx, loading)
	})
	g.Go(func() error {
		return ucPlayback.SampleElapsed(gctx, elapsed)
	})

	// 接続を待たずに画面を出す
	go func() {
		err := player.SetSource(gctx, config.StreamURL)
		if err != nil {
			zlog.Ctx(gctx).Error().Msgf("%+v", err)
		}
	}()

	err = tui.Run(gctx, ucPlayback, tui.Sources{
		NowPlaying: cells.NowPlaying,
		Program:    cells.Program,
		Loading:    loading,
		Elapsed:    elapsed,
	})
	cancel()

	waitErr := run.IgnoreCanceled(g.Wait())
	log.Info().Msg("stop")
	if err != nil {
		return err
	}
	return waitErr
}
