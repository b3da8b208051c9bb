package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fabworks-cad/fastener-resolver/internal/handlers"
	"github.com/fabworks-cad/fastener-resolver/internal/watcher"
)

func newServeCmd() *cobra.Command {
	var port string
	var catalogFile string
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the fastener resolution API server",
		Long: `Starts the HTTP API for resolving free-text fastener requests.

The API accepts chat-style messages and returns fully specified fastener
parts with vendor part numbers where the catalog has a match.`,
		Example: `  # Start server on default port 8888
  fastener-resolver serve

  # Custom port and catalog, reloading the catalog on change
  fastener-resolver serve --port 3000 --catalog parts.csv --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = os.Getenv("FASTENER_PORT")
				if port == "" {
					port = "8888"
				}
			}
			path := catalogPath(catalogFile)

			res, index, store, err := buildCore(path)
			if err != nil {
				return err
			}
			handler := handlers.New(res, index, store)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/chat", handler.HandleChat)
			mux.HandleFunc("/api/catalog", handler.HandleCatalog)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if watch {
				catalogWatcher, err := watcher.New(path, store)
				if err != nil {
					return err
				}
				go catalogWatcher.Run(ctx)
			}

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: handlers.WithCORS(mux),
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Fastener resolver API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-ctx.Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancelShutdown()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default 8888, or FASTENER_PORT)")
	cmd.Flags().StringVar(&catalogFile, "catalog", "", "Vendor catalog file (.csv, .parquet or .sqlite)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the vendor catalog when the file changes")

	return cmd
}
