package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/lexicon/internal/db"
	"github.com/ziadkadry99/lexicon/internal/logging"
	"github.com/ziadkadry99/lexicon/internal/prefs"
	"github.com/ziadkadry99/lexicon/internal/router"
	"github.com/ziadkadry99/lexicon/internal/server"
	"github.com/ziadkadry99/lexicon/internal/view"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the lexicon web client",
	Long:  `Serves the browser client and its live sessions. The words-and-languages service is reached at api_base.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logging.Sync()

		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}

		// Open database.
		dbPath := filepath.Join(cfg.DataDir, "lexicon.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		renderer, err := view.NewRenderer(cfg.Title, cfg.HomeMarkdown)
		if err != nil {
			return fmt.Errorf("loading templates: %w", err)
		}

		// Create and start server.
		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, view.Deps{
			API:         newAPIClient(cfg),
			Prefs:       prefs.NewStore(database),
			Router:      router.New(),
			Renderer:    renderer,
			NoticeDelay: cfg.NoticeDelay,
		})

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "lexicon v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  API: %s\n", cfg.APIBase)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVarP(&serverPort, "port", "p", 5500, "port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
