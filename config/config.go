// Package config loads the resolver CLI's optional on-disk configuration:
// a TOML config file and a .env file, both best-effort when absent and
// fatal when malformed.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
)

// ConfigFileName is the optional project-level configuration file read
// from the project root, if present.
const ConfigFileName = "solresolve.toml"

// EnvFileName is the optional dotenv file read from the project root.
const EnvFileName = ".env"

// tomlConfig mirrors solresolve.toml's on-disk shape. log-level is
// intentionally not mirrored here: the reporter is initialized from the
// --loglevel flag before a project root (and therefore a config file) is
// known, so there is no point in the pipeline where a file-sourced log
// level could take effect ahead of that. solresolve.toml only configures
// node-path.
type tomlConfig struct {
	NodePath string `toml:"node-path"`
}

// Config is the resolver CLI's runtime configuration, after applying an
// optional solresolve.toml on top of defaults. Environment variables are
// not consulted.
type Config struct {
	// ProjectRoot is the absolute path to the project being resolved.
	ProjectRoot string

	// NodePath, if set, overrides the ancestor-walk starting point used
	// for node_modules installation-name lookups (useful in monorepos
	// where the resolver is invoked from a subpackage whose own directory
	// sits below the node_modules tree it should resolve against).
	NodePath string
}

// Load reads solresolve.toml from projectRoot, if present, applying it on
// top of sensible defaults. A missing file is not an error; a malformed
// one is.
func Load(projectRoot string) (*Config, error) {
	cfg := &Config{ProjectRoot: projectRoot}

	path := filepath.Join(projectRoot, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var tc tomlConfig
	if err := toml.Unmarshal(data, &tc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.NodePath = tc.NodePath

	return cfg, nil
}

// LoadEnv loads projectRoot/.env into the process environment, if present.
// Existing environment variables are never overwritten. A missing file is
// not an error.
func LoadEnv(projectRoot string) error {
	path := filepath.Join(projectRoot, EnvFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}
