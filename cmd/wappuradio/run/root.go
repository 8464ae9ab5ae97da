package run

import (
	"context"
	"os"
	"os/signal"

	"github.com/sobadon/wappuradio/internal/config"
	"github.com/sobadon/wappuradio/internal/logutil"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	log = logutil.NewLogger()
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "run",
		Short: "poll now playing and programs, record history and relay them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	return rootCmd
}

func run(ctx context.Context) error {
	log.Info().Msg("start")

	config, err := config.Load(log, ".env")
	if err != nil {
		return err
	}
	logutil.SetLevel(config.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(log.WithContext(ctx))
	cleanup, err := Start(ctx, g, config, NewCells())
	if err != nil {
		return err
	}
	defer cleanup()
	log.Info().Msg("setup done")

	err = IgnoreCanceled(g.Wait())
	log.Info().Msg("Interrupt")
	return err
}
