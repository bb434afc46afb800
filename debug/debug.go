// Package debug provides env-gated diagnostics.
package debug

import (
	"io"
	"log"
	"os"
	"time"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

// Enabled returns true if debug mode is active (TABULA_DEBUG=1).
func Enabled() bool {
	return os.Getenv("TABULA_DEBUG") == "1"
}

// SetOutput redirects debug output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Logf logs a [DEBUG] line when debug mode is enabled.
func Logf(format string, args ...any) {
	if !Enabled() {
		return
	}
	logger.Printf("[DEBUG] "+format, args...)
}

// Timer logs how long a step took when the returned func is called.
//
//	defer debug.Timer("render")()
func Timer(step string) func() {
	if !Enabled() {
		return func() {}
	}
	start := time.Now()
	return func() {
		logger.Printf("[DEBUG] %s took %v", step, time.Since(start).Round(time.Microsecond))
	}
}
