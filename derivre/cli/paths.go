package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration
// and REPL history.
type AppPaths interface {
	ConfigDir() string
	HistoryFile() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	a := appPaths{tag: strings.ToLower(appTag)}
	var err error
	a.home, err = os.UserHomeDir()
	if err != nil {
		a.home = ""
	}
	return a, err
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, ".config")
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) HistoryFile() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = os.TempDir()
	}
	return filepath.Join(c, a.tag, a.tag+"-repl-history")
}
