package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jward/circle"
	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagLoop   bool
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "circle",
	Short:         "Circle area calculator with cm-to-inch conversion",
	Long:          "Circle reads a radius in centimeters from standard input, converts it to inches, and prints the circle's area. With --loop it repeats until a zero radius and also prints the circumference.",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	RunE: runCalc,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")
	rootCmd.Flags().BoolVar(&flagLoop, "loop", false, "keep prompting until a zero radius is entered")
}

func runCalc(cmd *cobra.Command, args []string) error {
	// Prompts share stdout in text mode. In JSON mode they move to stderr so
	// stdout carries only the result envelope.
	promptW := io.Writer(os.Stdout)
	if flagFormat == "json" {
		promptW = os.Stderr
	}

	var opts []circle.Option
	if flagLoop {
		opts = append(opts, circle.WithLoop(true))
	}
	session := circle.NewSession(os.Stdin, promptW, opts...)

	var results []CLIMeasurement
	err := session.Run(func(m circle.Measurement) error {
		if flagFormat == "text" {
			formatMeasurementText(os.Stdout, m, flagLoop)
			return nil
		}
		results = append(results, measurementToCLI(m))
		return nil
	})
	if err != nil {
		return outputError("calc", err)
	}

	if flagFormat == "json" {
		return outputResult(CLIResult{Command: "calc", Results: results})
	}
	return nil
}
