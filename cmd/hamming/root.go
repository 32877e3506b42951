package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hamming",
	Short: "Hamming is a distance toolbox for bytes, text and fingerprints",
	Long: `Hamming computes bitwise and element-wise Hamming distances between
equal-length inputs, and serves a small fingerprint store with
nearest-fingerprint search over HTTP and MCP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
