package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/soleret/hamming/internal/adapters/http"
	"github.com/soleret/hamming/internal/config"
	"github.com/soleret/hamming/internal/logging"
	"github.com/soleret/hamming/pkg/index"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fingerprint HTTP service",
	Long: `Starts the HTTP service exposing distance computation, fingerprint
storage and nearest-fingerprint search as a JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		configPath, _ := cmd.Flags().GetString("config")
		redisAddr, _ := cmd.Flags().GetString("redis")
		redisPrefix, _ := cmd.Flags().GetString("redis-prefix")

		cfg := config.Default()
		if configPath != "" {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}
		}

		// Flags override file values.
		if cmd.Flags().Changed("addr") {
			cfg.Addr = addr
		}
		if cmd.Flags().Changed("redis") {
			cfg.Redis.Addr = redisAddr
		}
		if cmd.Flags().Changed("redis-prefix") {
			cfg.Redis.Prefix = redisPrefix
		}

		logger := logging.New(slog.LevelInfo)

		store, closeStore := newStore(cfg.Redis, logger)
		defer closeStore()

		handler := httpAdapter.NewHandler(index.New(store), logger)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Hamming Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Hamming Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("config", "", "Path to a YAML or JSON config file")
	serveCmd.Flags().String("redis", "", "Redis address for persistent fingerprints (empty = in-memory)")
	serveCmd.Flags().String("redis-prefix", "", "Key prefix for the Redis store")
}
