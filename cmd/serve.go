package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutree.dev/pkg/mutree/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveAddrFlag string

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve simulations over HTTP",
		Long: `Start an HTTP server:

  POST /api/runs            run a simulation, body {"words": "дом бежать"}
  GET  /download/:filename  download mutation_history.txt or a graph export
  GET  /graph               the latest graph in DOT format
  GET  /health              liveness

Run parameters come from the run.* configuration keys. Each run is written
to its own directory under --output.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !verboseFlag {
				gin.SetMode(gin.ReleaseMode)
			}

			handlers := server.NewHandlers(workflow, outputFS, runArgsFromConfig(nil))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			addr := viper.GetString(serveAddrConfigKey)
			cmd.Printf("listening on %s\n", addr)

			return serveHTTP(ctx, addr, server.NewRouter(handlers))
		},
	}

	cmd.Flags().StringVar(&serveAddrFlag, addrFlagName, viper.GetString(serveAddrConfigKey), "address to listen on")
	bindFlagToConfig(cmd.Flags().Lookup(addrFlagName), serveAddrConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// serveHTTP serves handler on addr until ctx is done, then shuts down
// gracefully.
func serveHTTP(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("http server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("http server shutting down", "addr", addr)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
