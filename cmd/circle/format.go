package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jward/circle"
)

// formatMeasurementText writes the fixed result lines for one measurement.
// The circumference line only appears in loop mode.
func formatMeasurementText(w io.Writer, m circle.Measurement, withCircumference bool) {
	fmt.Fprintf(w, "Circle's area is %3.2f (sq in).\n", m.Area)
	if withCircumference {
		fmt.Fprintf(w, "Its circumference is %3.2f (in).\n", m.Circumference)
	}
}

// outputResult marshals a CLIResult envelope to stdout. Text mode never
// reaches here; its result lines are written per measurement as the session
// runs, so they interleave with the prompts.
func outputResult(result CLIResult) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
