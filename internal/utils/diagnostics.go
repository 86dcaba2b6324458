package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
)

// DiagnosticSystem provides structured, user-friendly CLI output. The
// discovery core itself never logs; all reporting happens here.
type DiagnosticSystem struct {
	level    DiagnosticLevel
	output   io.Writer
	errorOut io.Writer
}

// NewDiagnosticSystem creates a new diagnostic system
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:    level,
		output:   os.Stdout,
		errorOut: os.Stderr,
	}
}

// NewQuietDiagnostics creates a diagnostic system that only shows errors
func NewQuietDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticError)
}

// NewVerboseDiagnostics creates a diagnostic system with full output
func NewVerboseDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticVerbose)
}

// SetOutput redirects normal and error output, mainly for tests
func (d *DiagnosticSystem) SetOutput(out, errOut io.Writer) {
	d.output = out
	d.errorOut = errOut
}

// Error outputs error messages (always shown unless silent)
func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		d.write(d.errorOut, color.New(color.FgRed, color.Bold), "ERROR", format, args...)
	}
}

// Warn outputs warning messages
func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	if d.level >= DiagnosticWarn {
		d.write(d.errorOut, color.New(color.FgYellow), "WARN", format, args...)
	}
}

// Info outputs informational messages
func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.write(d.output, color.New(color.FgCyan), "INFO", format, args...)
	}
}

// Success outputs success messages
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.write(d.output, color.New(color.FgGreen), "OK", format, args...)
	}
}

// Debug outputs messages only shown in verbose mode
func (d *DiagnosticSystem) Debug(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		d.write(d.output, color.New(color.FgHiBlack), "DEBUG", format, args...)
	}
}

// Section outputs a section header
func (d *DiagnosticSystem) Section(title string) {
	if d.level >= DiagnosticInfo {
		header := color.New(color.Bold, color.FgBlue)
		fmt.Fprintf(d.output, "%s\n", header.Sprintf("=== %s ===", title))
	}
}

// List outputs an indented list item
func (d *DiagnosticSystem) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "  - %s\n", fmt.Sprintf(format, args...))
	}
}

func (d *DiagnosticSystem) write(w io.Writer, c *color.Color, tag, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", c.Sprintf("[%s]", tag), fmt.Sprintf(format, args...))
}
