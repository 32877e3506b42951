package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/soleret/hamming"
	"github.com/soleret/hamming/pkg/fingerprint"
)

var distCmd = &cobra.Command{
	Use:   "dist <a> <b>",
	Short: "Compute the Hamming distance between two inputs",
	Long: `Computes the Hamming distance between two equal-length inputs.

By default the arguments are compared as text, counting the character
positions at which they differ. With --hex the arguments are decoded
as hex byte strings and compared bit by bit.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		hexMode, _ := cmd.Flags().GetBool("hex")
		quiet, _ := cmd.Flags().GetBool("quiet")

		if err := runDist(args[0], args[1], hexMode, quiet); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(distCmd)

	distCmd.Flags().Bool("hex", false, "Treat the arguments as hex byte strings and compare bitwise")
	distCmd.Flags().BoolP("quiet", "q", false, "Print the distance only")
}

func runDist(a, b string, hexMode, quiet bool) error {
	var (
		distance int
		err      error
	)
	if hexMode {
		var av, bv []byte
		av, err = fingerprint.DecodeVector(a)
		if err == nil {
			bv, err = fingerprint.DecodeVector(b)
		}
		if err != nil {
			return err
		}
		distance, err = hamming.Bytes(av, bv)
	} else {
		distance, err = hamming.Strings(a, b)
	}
	if err != nil {
		return err
	}

	if quiet {
		fmt.Println(distance)
		return nil
	}

	fmt.Printf("distance: %d\n", distance)
	if !hexMode && distance > 0 {
		printDiff(a, b)
	}
	return nil
}

// printDiff shows both inputs with a caret under each differing
// position. On a terminal the differing characters of the second
// input are highlighted.
func printDiff(a, b string) {
	ra, rb := []rune(a), []rune(b)

	second := string(rb)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		second = highlightDiff(ra, rb, termenv.ColorProfile())
	}

	fmt.Println(string(ra))
	fmt.Println(second)
	fmt.Println(markerLine(ra, rb))
}

// markerLine places a caret under each differing rune position.
func markerLine(a, b []rune) string {
	marks := make([]rune, len(a))
	for i := range a {
		if a[i] == b[i] {
			marks[i] = ' '
		} else {
			marks[i] = '^'
		}
	}
	return strings.TrimRight(string(marks), " ")
}

// highlightDiff renders b, coloring the runes that differ from a.
func highlightDiff(a, b []rune, p termenv.Profile) string {
	var out strings.Builder
	for i := range b {
		if a[i] == b[i] {
			out.WriteString(string(b[i]))
			continue
		}
		out.WriteString(p.String(string(b[i])).Foreground(p.Color("#fb7185")).Bold().String())
	}
	return out.String()
}
