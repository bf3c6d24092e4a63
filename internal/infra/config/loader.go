package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Loader loads configuration from TOML files. Global config is read
// first, then the workspace config, then the WORKSPACE_ROOT
// environment variable; later sources take precedence.
type Loader struct {
	globalConfDir string
	env           func(string) string
}

// NewLoader creates a Loader using the default global config directory
// and process environment.
func NewLoader() *Loader {
	return &Loader{
		globalConfDir: defaultGlobalConfigDir(),
		env:           os.Getenv,
	}
}

// NewLoaderWith creates a Loader with explicit global config dir and
// environment lookup. Useful for testing.
func NewLoaderWith(globalConfDir string, env func(string) string) *Loader {
	return &Loader{globalConfDir: globalConfDir, env: env}
}

// defaultGlobalConfigDir returns ~/.config/roadmap (or the XDG
// equivalent).
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "roadmap")
}

// Load returns the merged configuration with the workspace root
// resolved.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	global, err := l.loadFile(filepath.Join(l.globalConfDir, ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if global != nil {
		merge(cfg, global)
	}

	// Environment wins over any config file for the root.
	if root := l.env(WorkspaceRootEnv); root != "" {
		cfg.Workspace.Root = root
	}

	// Workspace-local config can tune everything except the root
	// (it is found via the root).
	wsPath := filepath.Join(cfg.Workspace.Root, "roadmap", ConfigFileName)
	ws, err := l.loadFile(wsPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if ws != nil {
		root := cfg.Workspace.Root
		merge(cfg, ws)
		cfg.Workspace.Root = root
	}

	return cfg, nil
}

// loadFile parses one TOML config file.
func (l *Loader) loadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// merge overlays non-empty fields of src onto dst.
func merge(dst, src *Config) {
	if src.Workspace.Root != "" {
		dst.Workspace.Root = src.Workspace.Root
	}
	if src.Workspace.DocsBase != "" {
		dst.Workspace.DocsBase = src.Workspace.DocsBase
	}
	if src.Banner.Title != "" {
		dst.Banner.Title = src.Banner.Title
	}
	if src.Banner.Subtitle != "" {
		dst.Banner.Subtitle = src.Banner.Subtitle
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
}
