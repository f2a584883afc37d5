package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/lexicon/internal/api"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the words-and-languages service is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newAPIClient(cfg)

		if err := client.Test(context.Background()); err != nil {
			if api.IsTransport(err) {
				return fmt.Errorf("could not connect to %s: %w", client.BaseURL(), err)
			}
			return err
		}
		fmt.Printf("Test was successful (%s)\n", client.BaseURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
