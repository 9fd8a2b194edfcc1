// Package config provides runtime configuration for chess-rules.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how reports and move results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Plain text, one fact per line
	JSON                     // Indented JSON documents
)

var formatNames = map[OutputFormat]string{
	Text: "text",
	JSON: "json",
}

func (f OutputFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat accepts "text" or "json" in any case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return Text, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// Verbosity levels for LogFile output.
const (
	Silent     = 0 // nothing
	Summary    = 1 // one line per command
	Commentary = 2 // one line per move and per analysed piece
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // Silent, Summary or Commentary

	// Workers bounds the analysis pool.
	Workers int

	Format OutputFormat

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Workers:    runtime.NumCPU(),
		Format:     Text,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers = %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if _, ok := formatNames[c.Format]; !ok {
		return fmt.Errorf("format %v: %w", c.Format, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Silent {
		return fmt.Errorf("verbosity = %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
