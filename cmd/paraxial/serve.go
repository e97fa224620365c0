package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/opticslab/paraxial/web/server"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the workspace HTTP server",
	Long:  `Starts the tracing workspace, exposing the component catalog and trace API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		staticDir, _ := cmd.Flags().GetString("static")

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		handler := server.NewHandler(server.Config{
			Logger:    logger,
			StaticDir: staticDir,
		})

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting workspace server", "addr", srv.Addr, "static", staticDir)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			logger.Error("server error", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("static", "static", "Directory with the workspace UI")
}
