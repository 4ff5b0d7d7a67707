package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/pomotree/internal/app"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Storage Storage
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Storage struct {
	Path string
}

// EnvPrefix namespaces every environment override, e.g. POMOTREE_WIDTH.
const EnvPrefix = "POMOTREE"

const (
	keyWidth   = "width"
	keyHeight  = "height"
	keyFooter  = "footer"
	keyTrace   = "trace"
	keyDebug   = "debug"
	keyWatch   = "watch"
	keyLogFile = "log-file"
	keyDB      = "db"
)

// Error marks configuration problems so callers can exit with a distinct
// status.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// RegisterFlags adds the shared flags to fs. Every flag can also be set
// through the environment.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int(keyWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(keyHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool(keyFooter, false, "show every key binding below the browser")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
	fs.Bool(keyDebug, false, "panic on tree invariant violations")
	fs.Bool(keyWatch, false, "refresh expanded directories when they change on disk")
	fs.String(keyLogFile, "", "path to the log file")
	fs.String(keyDB, "", "path to the timer database (defaults to the temp dir)")
}

// Load resolves configuration from fs, falling back to POMOTREE_* variables
// for flags that were not given. fs must have been parsed.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, &Error{Err: fmt.Errorf("bind flags: %w", err)}
	}

	width, err := intValue(v, keyWidth)
	if err != nil {
		return Config{}, err
	}
	height, err := intValue(v, keyHeight)
	if err != nil {
		return Config{}, err
	}
	footer, err := boolValue(v, keyFooter)
	if err != nil {
		return Config{}, err
	}
	trace, err := boolValue(v, keyTrace)
	if err != nil {
		return Config{}, err
	}
	debug, err := boolValue(v, keyDebug)
	if err != nil {
		return Config{}, err
	}
	watch, err := boolValue(v, keyWatch)
	if err != nil {
		return Config{}, err
	}
	logFile := strings.TrimSpace(v.GetString(keyLogFile))
	db := strings.TrimSpace(v.GetString(keyDB))

	cfg := Config{
		App: app.Config{
			Width:      width,
			Height:     height,
			ShowFooter: footer,
			Debug:      debug,
			Watch:      watch,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Storage: Storage{
			Path: db,
		},
		Flags: map[string]string{
			"width":   strconv.Itoa(width),
			"height":  strconv.Itoa(height),
			"footer":  strconv.FormatBool(footer),
			"trace":   strconv.FormatBool(trace),
			"debug":   strconv.FormatBool(debug),
			"watch":   strconv.FormatBool(watch),
			"logFile": logFile,
			"db":      db,
		},
		Args: append([]string(nil), args...),
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the browser cannot work with.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	if len(errs) > 0 {
		return &Error{Err: errors.Join(errs...)}
	}
	return nil
}

// Values set through the environment arrive as strings, so they are parsed
// here rather than trusting viper's silent zero fallback.
func intValue(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &Error{Err: fmt.Errorf("%s: invalid integer %q", key, raw)}
	}
	return n, nil
}

func boolValue(v *viper.Viper, key string) (bool, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &Error{Err: fmt.Errorf("%s: invalid boolean %q", key, raw)}
	}
	return b, nil
}
