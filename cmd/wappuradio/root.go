package main

import (
	"log"

	"github.com/sobadon/wappuradio/cmd/wappuradio/history"
	"github.com/sobadon/wappuradio/cmd/wappuradio/listen"
	"github.com/sobadon/wappuradio/cmd/wappuradio/now"
	"github.com/sobadon/wappuradio/cmd/wappuradio/run"
	"github.com/sobadon/wappuradio/cmd/wappuradio/version"
	"github.com/spf13/cobra"
)

func main() {
	execute()
}

func execute() {
	var rootCmd = &cobra.Command{
		Use:   "wappuradio",
		Short: "listen to Rakkauden Wappuradio",
	}

	rootCmd.AddCommand(run.Command())
	rootCmd.AddCommand(listen.Command())
	rootCmd.AddCommand(now.Command())
	rootCmd.AddCommand(history.Command())
	rootCmd.AddCommand(version.Command())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}
