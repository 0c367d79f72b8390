package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"

	"github.com/streamline-dev/streamline/internal/branding"
	"github.com/streamline-dev/streamline/internal/project"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyEdition = "edition"
	KeyDocs    = "docs"
	KeyTests   = "tests"
	KeyShell   = "shell"
	KeyViewer  = "viewer"
)

var defaults = map[string]string{
	KeyEdition: string(project.DefaultEdition),
	KeyDocs:    string(project.DocsNone),
	KeyTests:   string(project.TestsNone),
	KeyShell:   "sh",
	KeyViewer:  "",
}

// Keys returns every recognized key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dir returns the user config directory: $STREAMLINE_HOME when set,
// otherwise ~/.streamline/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.streamline/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error; a malformed one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// List returns every recognized key with its effective value.
func List() map[string]string {
	out := make(map[string]string, len(defaults))
	for _, k := range Keys() {
		out[k] = viper.GetString(k)
	}
	return out
}

// Validate checks that key is recognized and value is acceptable for it.
func Validate(key, value string) error {
	switch key {
	case KeyEdition:
		_, err := project.ValidateEdition(value)
		return err
	case KeyDocs:
		_, err := project.ParseDocsGenerator(value)
		return err
	case KeyTests:
		_, err := project.ParseTestFramework(value)
		return err
	case KeyShell:
		if value == "" {
			return fmt.Errorf("shell cannot be empty")
		}
		return nil
	case KeyViewer:
		return nil
	default:
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
