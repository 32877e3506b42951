package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soleret/hamming"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hamming",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hamming version %s\n", strings.TrimSpace(hamming.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
