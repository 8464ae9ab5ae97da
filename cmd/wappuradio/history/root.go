package history

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/sobadon/wappuradio/domain/model/history"
	"github.com/sobadon/wappuradio/infrastructures/sqlite"
	"github.com/sobadon/wappuradio/internal/config"
	"github.com/sobadon/wappuradio/internal/errutil"
	"github.com/sobadon/wappuradio/internal/logutil"
	"github.com/sobadon/wappuradio/usecase"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

const defaultLimit = 20

func Command() *cobra.Command {
	var limit int
	rootCmd := &cobra.Command{
		Use:   "history",
		Short: "show recently played songs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd.Context(), cmd.OutOrStdout(), limit)
		},
	}
	rootCmd.Flags().IntVarP(&limit, "limit", "n", defaultLimit, "number of songs to show")
	return rootCmd
}

func show(ctx context.Context, w io.Writer, limit int) error {
	config, err := config.Load(log, ".env")
	if err != nil {
		return err
	}
	logutil.SetLevel(config.LogLevel)
	if config.SqlitePath == "" {
		return errors.Wrap(errutil.ErrConfig, "history is disabled (WR_SQLITE_PATH is empty)")
	}

	db, err := sqlite.NewDB(config.SqlitePath)
	if err != nil {
		return err
	}
	defer db.Close()
	err = sqlite.Setup(db)
	if err != nil {
		return err
	}

	ucHistory := usecase.NewHistory(sqlite.New(db), clockwork.NewRealClock())
	entries, err := ucHistory.Recent(log.WithContext(ctx), limit)
	if errors.Is(err, errutil.ErrDatabaseNotFoundHistory) {
		log.Info().Msg("no songs recorded yet")
		return nil
	}
	if err != nil {
		return err
	}
	return write(w, entries, time.Local)
}

func write(w io.Writer, entries []history.Entry, loc *time.Location) error {
	for _, entry := range entries {
		_, err := fmt.Fprintf(w, "%s  %s\n", entry.HeardAt.In(loc).Format("2006-01-02 15.04"), entry.Song)
		if err != nil {
			return err
		}
	}
	return nil
}
