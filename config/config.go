// Package config loads the optional YAML configuration file of the func
// command.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"git.sr.ht/~mango/func/vm"
)

type Config struct {
	MaxDepth int      `yaml:"max_depth"`
	Prompt   string   `yaml:"prompt"`
	History  string   `yaml:"history"`  // REPL history file, ‘~’ is expanded
	LogLevel string   `yaml:"log_level"` // debug, verbose, info, warning or error
	Preload  []string `yaml:"preload"`   // Scripts run before the first REPL prompt
}

func Default() Config {
	return Config{
		MaxDepth: vm.DefaultMaxDepth,
		Prompt:   ":> ",
		History:  "~/.func_history",
		LogLevel: "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/func/config.yaml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate config directory")
	}
	return filepath.Join(dir, "func", "config.yaml"), nil
}

// Load reads the file at path over the defaults.  A missing file is not an
// error when optional is set.
func Load(path string, optional bool) (Config, error) {
	c := Default()

	f, err := os.Open(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return c, nil
		}
		return c, errors.Wrapf(err, "failed to open config ‘%s’", path)
	}
	defer f.Close()

	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil && err != io.EOF {
		return c, errors.Wrapf(err, "failed to parse config ‘%s’", path)
	}

	if c.MaxDepth < 0 {
		return c, errors.Errorf("config ‘%s’: max_depth must not be negative", path)
	}
	for i, p := range c.Preload {
		c.Preload[i] = Expand(p)
	}
	c.History = Expand(c.History)
	return c, nil
}

// Expand replaces a leading ‘~’ with the home directory.
func Expand(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
