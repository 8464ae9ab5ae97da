package version

import (
	"github.com/sobadon/wappuradio/internal/logutil"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()

	// ビルド時に -ldflags "-X github.com/sobadon/wappuradio/cmd/wappuradio/version.version=..." で埋め込む
	version = "dev"
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "version",
		Short: "show version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ShowVersion()
			return nil
		},
	}
	return rootCmd
}

func ShowVersion() {
	log.Info().Msgf("version: %s", version)
}
