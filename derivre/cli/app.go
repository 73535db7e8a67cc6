package cli

import (
	"context"
	"errors"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// ErrNoMatch is returned by commands which found nothing to report. It maps
// to exit code 1, as with grep.
var ErrNoMatch = errors.New("no match")

// ErrConfig flags an invalid configuration value.
var ErrConfig = errors.New("invalid configuration")

// Exit exits the application.
func Exit(errcode int) {
	os.Exit(errcode)
}

// exitCode maps the error of a command run to a process exit code:
// 0 on success, 1 if nothing matched, 2 for everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNoMatch):
		return 1
	}
	return 2
}
