package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	mcpAdapter "github.com/soleret/hamming/internal/adapters/mcp"
	"github.com/soleret/hamming/internal/config"
	"github.com/soleret/hamming/pkg/index"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the hamming toolbox as an MCP Server on Stdio.
This allows AI agents (like Claude Desktop) to compute distances and
search fingerprints as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		redisAddr, _ := cmd.Flags().GetString("redis")
		redisPrefix, _ := cmd.Flags().GetString("redis-prefix")

		// Configure logger
		opts := &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		store, closeStore := newStore(config.Redis{Addr: redisAddr, Prefix: redisPrefix}, logger)
		defer closeStore()

		srv := mcpAdapter.NewServer(index.New(store))

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		slog.Info("Starting Hamming MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("redis", "", "Redis address for persistent fingerprints (empty = in-memory)")
	mcpCmd.Flags().String("redis-prefix", "", "Key prefix for the Redis store")
}
