package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/lexicon/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Web client for the lexicon words and languages service",
	Long: `Lexicon serves a browser client for a words-and-languages REST service.
Pages are rendered on the server and kept live over a WebSocket, so the
browser only runs a small shim. The command line can also query the
service directly.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
