package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// Config defines configuration parameters for the file tree, the settings store and the UI.
type Config struct {
	MaxDepth   int
	MaxEntries int
	ShowHidden bool
	SortDirs   bool

	// AppID keys the Fyne preferences used when SettingsFile is empty.
	AppID string
	// SettingsFile, when set, keeps dialog state in a YAML file instead of the app preferences.
	SettingsFile string
	// Language selects the label translation, e.g. "en" or "de".
	Language string
	// StartPath is the directory shown when no previous root was saved.
	StartPath string
	Verbose   bool
}

// DefaultConfig returns a configuration with sensible defaults: max depth 15, hidden files disabled, directory sorting enabled.
func DefaultConfig() *Config {
	return &Config{
		MaxDepth:   15, // Reasonable depth limit to prevent hangs
		MaxEntries: 1000,
		ShowHidden: false,
		SortDirs:   true,
		AppID:      "com.github.akaiko1.checkdialog",
		Language:   "en",
	}
}

// FileConfig is the on-disk configuration schema.
type FileConfig struct {
	Tree struct {
		MaxDepth   *int  `yaml:"maxDepth" json:"maxDepth"`
		MaxEntries int   `yaml:"maxEntries" json:"maxEntries"`
		ShowHidden *bool `yaml:"showHidden" json:"showHidden"`
		SortDirs   *bool `yaml:"sortDirs" json:"sortDirs"`
	} `yaml:"tree" json:"tree"`

	AppID        string `yaml:"appID" json:"appID"`
	SettingsFile string `yaml:"settingsFile" json:"settingsFile"`
	Language     string `yaml:"language" json:"language"`
	StartPath    string `yaml:"startPath" json:"startPath"`
	Verbose      bool   `yaml:"verbose" json:"verbose"`
}

// LoadFile reads YAML or JSON into FileConfig.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	}
	return fc, nil
}

// Apply overlays every non-zero value from fc onto c.
func (c *Config) Apply(fc FileConfig) {
	if c == nil {
		return
	}
	if fc.Tree.MaxDepth != nil {
		c.MaxDepth = *fc.Tree.MaxDepth
	}
	if fc.Tree.MaxEntries > 0 {
		c.MaxEntries = fc.Tree.MaxEntries
	}
	if fc.Tree.ShowHidden != nil {
		c.ShowHidden = *fc.Tree.ShowHidden
	}
	if fc.Tree.SortDirs != nil {
		c.SortDirs = *fc.Tree.SortDirs
	}
	if fc.AppID != "" {
		c.AppID = fc.AppID
	}
	if fc.SettingsFile != "" {
		c.SettingsFile = fc.SettingsFile
	}
	if fc.Language != "" {
		c.Language = fc.Language
	}
	if fc.StartPath != "" {
		c.StartPath = fc.StartPath
	}
	if fc.Verbose {
		c.Verbose = true
	}
}
