package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Successf prints a bold green line, used for end-of-run confirmations.
func Successf(w io.Writer, format string, args ...interface{}) {
	successColor.Fprintf(w, format+"\n", args...)
}

// Infof prints a cyan line for progress and supplementary detail.
func Infof(w io.Writer, format string, args ...interface{}) {
	infoColor.Fprintf(w, format+"\n", args...)
}

// Warnf prints a yellow line prefixed with "Warning:".
func Warnf(w io.Writer, format string, args ...interface{}) {
	warnColor.Fprintf(w, "Warning: "+format+"\n", args...)
}

// Errorf prints a bold red line prefixed with "Error:".
func Errorf(w io.Writer, format string, args ...interface{}) {
	errorColor.Fprintf(w, "Error: "+format+"\n", args...)
}

// Plainf prints an uncolored line, keeping call sites uniform.
func Plainf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

// Bold returns s wrapped in bold escape codes when color is enabled.
func Bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
