package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Output helpers for everything the CLI prints outside a prompt.

var (
	stdout  io.Writer = os.Stdout
	stderr  io.Writer = os.Stderr
	profile           = termenv.EnvColorProfile()
)

// Success prints a green check and msg.
func Success(msg string) {
	fmt.Fprintf(stdout, "%s %s\n", profile.String("✓").Bold().Foreground(termenv.ANSIGreen), msg)
}

// Error prints a red cross and msg to stderr.
func Error(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", profile.String("✗").Bold().Foreground(termenv.ANSIRed), msg)
}

// Info prints a blue info marker and msg.
func Info(msg string) {
	fmt.Fprintf(stdout, "%s %s\n", profile.String("i").Bold().Foreground(termenv.ANSIBlue), msg)
}

// Header prints a bold header.
func Header(msg string) {
	fmt.Fprintf(stdout, "\n%s\n", profile.String(msg).Bold())
}

// Detail prints an indented detail line.
func Detail(label, value string) {
	fmt.Fprintf(stdout, "  %s %s\n", profile.String(label+":").Faint(), value)
}
