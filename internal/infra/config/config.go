// Package config provides configuration loading for the roadmap tool.
package config

import (
	"os"
	"path/filepath"
)

// WorkspaceRootEnv is the environment variable overriding the
// workspace root.
const WorkspaceRootEnv = "WORKSPACE_ROOT"

// ConfigFileName is the name of the TOML config file, looked up both
// globally and under <workspace>/roadmap/.
const ConfigFileName = "config.toml"

// Config holds user-tunable settings. Fields left empty in both config
// files keep their defaults.
type Config struct {
	Workspace WorkspaceConfig `toml:"workspace"`
	Banner    BannerConfig    `toml:"banner"`
	Log       LogConfig       `toml:"log"`
}

// WorkspaceConfig locates the roadmap data.
type WorkspaceConfig struct {
	// Root is the workspace root; tasks live in <root>/roadmap/tasks.json.
	Root string `toml:"root"`
	// DocsBase overrides the directory linked documents resolve
	// against (default: parent of Root).
	DocsBase string `toml:"docs_base"`
}

// BannerConfig customizes the report-mode header.
type BannerConfig struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
}

// LogConfig controls file logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workspace: WorkspaceConfig{Root: defaultWorkspaceRoot()},
		Banner: BannerConfig{
			Title:    "Workspace Roadmap",
			Subtitle: "Task Management System",
		},
		Log: LogConfig{Level: "info"},
	}
}

// defaultWorkspaceRoot returns the fixed fallback workspace location.
func defaultWorkspaceRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "docs"
	}
	return filepath.Join(home, "workspace", "docs")
}
