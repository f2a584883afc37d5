package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the words known to the service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		words, err := newAPIClient(cfg).ListWords(context.Background())
		if err != nil {
			return fmt.Errorf("listing words: %w", err)
		}
		if len(words) == 0 {
			fmt.Println("No words yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWORD\tPART OF SPEECH\tLANGUAGE")
		for _, wd := range words {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", wd.ID, wd.Word, wd.POS, wd.Language)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}
