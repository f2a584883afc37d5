package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/lexicon/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lexicon configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the service address and listen port and writes a .lexicon.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
