package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages known to the service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		langs, err := newAPIClient(cfg).ListLanguages(context.Background())
		if err != nil {
			return fmt.Errorf("listing languages: %w", err)
		}
		if len(langs) == 0 {
			fmt.Println("No languages yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCODE\tNAME")
		for _, l := range langs {
			fmt.Fprintf(w, "%d\t%s\t%s\n", l.ID, l.Code, l.Name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
