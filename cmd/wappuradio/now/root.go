package now

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sobadon/wappuradio/cmd/wappuradio/run"
	"github.com/sobadon/wappuradio/domain/model/nowplaying"
	"github.com/sobadon/wappuradio/domain/model/program"
	"github.com/sobadon/wappuradio/infrastructures/wappuradio"
	"github.com/sobadon/wappuradio/internal/config"
	"github.com/sobadon/wappuradio/internal/logutil"
	"github.com/sobadon/wappuradio/internal/timeutil"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "now",
		Short: "show the current program and song",
		RunE: func(cmd *cobra.Command, args []string) error {
			return now(cmd.Context(), cmd.OutOrStdout())
		},
	}
	return rootCmd
}

func now(ctx context.Context, w io.Writer) error {
	config, err := config.Load(log, ".env")
	if err != nil {
		return err
	}
	logutil.SetLevel(config.LogLevel)
	ctx = log.WithContext(ctx)

	station := wappuradio.New(run.StationConfig(config))
	np := station.GetNowPlaying(ctx)
	schedule, ok := station.GetPrograms(ctx)

	var current *program.Program
	if ok {
		current = program.FindCurrent(program.SortByStart(schedule), time.Now())
	}
	return write(w, current, np, time.Local)
}

func write(w io.Writer, current *program.Program, np *nowplaying.NowPlaying, loc *time.Location) error {
	if current != nil {
		_, err := fmt.Fprintf(w, "%s (%s)\n", current.Title, timeutil.FormatRange(current.Start, current.End, loc))
		if err != nil {
			return err
		}
		if current.Host != "" {
			fmt.Fprintf(w, "Äänessä: %s\n", current.Host)
		}
		if current.Prod != "" {
			fmt.Fprintf(w, "Tuottaja: %s\n", current.Prod)
		}
	}
	if np != nil {
		_, err := fmt.Fprintf(w, "NYT SOI: %s\n", np.Song)
		if err != nil {
			return err
		}
	}
	if current == nil && np == nil {
		log.Warn().Msg("nothing is on air (or the station could not be reached)")
	}
	return nil
}
