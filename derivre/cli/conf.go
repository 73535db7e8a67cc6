package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/appender"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracerKeys are the trace keys of all packages in this module.
var tracerKeys = []string{"derivre.core", "derivre.script", "derivre.cli"}

func defaults(paths AppPaths) map[string]interface{} {
	return map[string]interface{}{
		"tracing.level":       "error",
		"tracing.destination": "",
		"repl.prompt":         "",
		"repl.history":        paths.HistoryFile(),
		"repl.vi":             false,
		"grep.jobs":           4,
	}
}

// loadConfig is called before any command runs. Configuration is merged from
// defaults, an optional YAML file and command line flags, in that order.
func loadConfig(cmd *cobra.Command) error {
	paths := locateAppPaths()
	k := koanf.New(".") // '.' is hierarchy delimiter
	if err := k.Load(confmap.Provider(defaults(paths), "."), nil); err != nil {
		return err
	}
	if err := loadConfigFile(k, cmd, paths); err != nil {
		return err
	}
	if err := mergeFlags(k, cmd); err != nil {
		return err
	}
	if err := configureTracing(k, paths); err != nil {
		return err
	}
	Configuration = k // push the configuration to app-global scope
	return nil
}

// loadConfigFile loads the file given by flag --config, or config.yaml in the
// application's configuration directory. Only an explicitly named file has to
// exist.
func loadConfigFile(k *koanf.Koanf, cmd *cobra.Command, paths AppPaths) error {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(paths.ConfigDir(), "config.yaml")
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			tracer().Debugf("no configuration file at %s", path)
			return nil
		}
		return fmt.Errorf("cannot read configuration: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	tracer().Infof("loaded configuration from %s", path)
	return nil
}

func mergeFlags(k *koanf.Koanf, cmd *cobra.Command) error {
	flags := cmd.Flags()
	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return err
	}
	overrides := map[string]interface{}{}
	if level := k.String("log-level"); level != "" {
		overrides["tracing.level"] = level
	}
	if logfile := k.String("log-file"); logfile != "" {
		overrides["tracing.destination"] = logfile
	}
	if len(overrides) == 0 {
		return nil
	}
	return k.Load(confmap.Provider(overrides, "."), nil)
}

// configureTracing installs Go-logger backed tracers for all packages of
// this module, with level and destination taken from the configuration.
func configureTracing(k *koanf.Koanf, paths AppPaths) error {
	level, err := traceLevel(k.String("tracing.level"))
	if err != nil {
		return err
	}
	konf := koanfadapter.New(k, "", nil) // no config file search, k is loaded already
	konf.Set("tracing.adapter", "go")    // use Go builtin logging facilities
	konf.Set("tracelevel.root", level.String())
	for _, key := range tracerKeys {
		konf.Set("tracelevel."+key, level.String())
	}
	if dest := traceDestination(konf.GetString("tracing.destination"), paths); dest != "" {
		konf.Set("tracing.destination", dest)
	}
	out, err := appender.AppenderFromConfig(konf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	// replaced tracers keep their previous level, so set it explicitly
	for _, key := range tracerKeys {
		t := tracing.Select(key)
		t.SetTraceLevel(level)
		t.SetOutput(out)
	}
	tracing.Infof("tracing at level %s", level)
	return nil
}

// traceDestination turns a bare file name into a file URL. Relative names
// are located in the configuration directory.
func traceDestination(dest string, paths AppPaths) string {
	switch strings.ToLower(dest) {
	case "", "stderr", "stdout":
		return dest
	}
	if strings.Contains(dest, ":") {
		return dest
	}
	if !filepath.IsAbs(dest) && paths != nil {
		dest = filepath.Join(paths.ConfigDir(), dest)
	}
	return "file://" + dest
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("%w: tracing level %q", ErrConfig, s)
}

func locateAppPaths() AppPaths {
	paths, err := DefaultAppPaths("derivre")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
