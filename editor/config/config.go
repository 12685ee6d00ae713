// Package config loads the editor settings from a TOML file and the
// NEVESHTAR_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalid = errors.New("invalid configuration")

const (
	DefaultTabStop       = 4
	DefaultQuitTimes     = 3
	DefaultStatusTimeout = 5

	maxTabStop = 16
)

type Config struct {
	// Width of a tab stop in rendered columns.
	TabStop int `toml:"tab_stop"`
	// Extra Ctrl-Q presses needed to drop unsaved changes.
	QuitTimes int `toml:"quit_times"`
	// How long a status message stays visible.
	StatusTimeoutSeconds int `toml:"status_timeout"`
	// Mirror copies to the system clipboard.
	SystemClipboard bool `toml:"system_clipboard"`
	// Debug log destination, empty for none.
	LogFile string `toml:"log_file"`
}

func Default() Config {
	return Config{
		TabStop:              DefaultTabStop,
		QuitTimes:            DefaultQuitTimes,
		StatusTimeoutSeconds: DefaultStatusTimeout,
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "neveshtar", "config.toml"), nil
}

// Load returns the defaults overlaid with the file at path, if it exists,
// and then with the environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // file doesn't exist, not an error
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("parsing config file %s:%d:%d: %w", path, row, col, err)
		}
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// envVars maps each environment variable to the field it overrides.
var envVars = []struct {
	name string
	set  func(c *Config, val string) error
}{
	{"NEVESHTAR_TAB_STOP", func(c *Config, val string) error { return setInt(&c.TabStop, val) }},
	{"NEVESHTAR_QUIT_TIMES", func(c *Config, val string) error { return setInt(&c.QuitTimes, val) }},
	{"NEVESHTAR_STATUS_TIMEOUT", func(c *Config, val string) error { return setInt(&c.StatusTimeoutSeconds, val) }},
	{"NEVESHTAR_SYSTEM_CLIPBOARD", func(c *Config, val string) error {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		c.SystemClipboard = b
		return nil
	}},
	{"NEVESHTAR_LOG_FILE", func(c *Config, val string) error {
		c.LogFile = val
		return nil
	}},
}

func setInt(dst *int, val string) error {
	n, err := strconv.Atoi(val)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func (c *Config) applyEnv() error {
	for _, v := range envVars {
		val, ok := os.LookupEnv(v.name)
		if !ok {
			continue
		}
		if err := v.set(c, val); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, v.name, val, err)
		}
	}
	return nil
}

func (c Config) Validate() error {
	if c.TabStop < 1 || c.TabStop > maxTabStop {
		return fmt.Errorf("%w: tab_stop %d not in 1..%d", ErrInvalid, c.TabStop, maxTabStop)
	}
	if c.QuitTimes < 0 {
		return fmt.Errorf("%w: quit_times %d is negative", ErrInvalid, c.QuitTimes)
	}
	if c.StatusTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: status_timeout %d must be positive", ErrInvalid, c.StatusTimeoutSeconds)
	}
	return nil
}

func (c Config) StatusTimeout() time.Duration {
	return time.Duration(c.StatusTimeoutSeconds) * time.Second
}
