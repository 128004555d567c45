package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "meshgen"

// EnvConfigPath names a config file when the -config flag is not given.
const EnvConfigPath = "MESHGEN_CONFIG"

// Load loads configuration with priority: defaults < file < flags.
// The file is the -config flag, then $MESHGEN_CONFIG, then the first of
// ./meshgen.yaml, ./.meshgen.yaml and <ConfigDir>/config.yaml that exists.
func Load() (*Config, error) {
	cfg := Default()

	if path := resolveConfigPath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg.source = path
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Source returns the file the config was loaded from, or "" for defaults.
func (c *Config) Source() string {
	return c.source
}

func resolveConfigPath() string {
	if path := ConfigPath(); path != "" {
		return path
	}
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return findConfigFile()
}

func findConfigFile() string {
	for _, path := range []string{
		appName + ".yaml",
		"." + appName + ".yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	} {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user meshgen config directory
// (os.UserConfigDir()/meshgen), or a directory under the temp dir when the
// user has no config home.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil || !filepath.IsAbs(base) {
		base = os.TempDir()
	}
	return filepath.Join(base, appName)
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected so a
// misspelled setting fails loudly; an empty file leaves cfg unchanged.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
