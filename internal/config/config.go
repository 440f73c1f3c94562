// Package config loads the md2mrkdwn CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bigbag/md2mrkdwn"
	"github.com/bigbag/md2mrkdwn/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config is the YAML shape of a conversion configuration. Absent keys keep
// their default values; unknown keys are rejected.
type Config struct {
	BulletChar        string       `yaml:"bulletChar"`
	CheckboxChecked   string       `yaml:"checkboxChecked"`
	CheckboxUnchecked string       `yaml:"checkboxUnchecked"`
	HorizontalRule    RuleConfig   `yaml:"horizontalRule"`
	HeaderStyle       string       `yaml:"headerStyle"`
	LinkFormat        string       `yaml:"linkFormat"`
	TableMode         string       `yaml:"tableMode"`
	Convert           ToggleConfig `yaml:"convert"`
}

// RuleConfig configures horizontal rule rendering.
type RuleConfig struct {
	Char   string `yaml:"char"`
	Length int    `yaml:"length"`
}

// ToggleConfig enables or disables individual conversions.
type ToggleConfig struct {
	Bold            bool `yaml:"bold"`
	Italic          bool `yaml:"italic"`
	Strikethrough   bool `yaml:"strikethrough"`
	Links           bool `yaml:"links"`
	Images          bool `yaml:"images"`
	Lists           bool `yaml:"lists"`
	TaskLists       bool `yaml:"taskLists"`
	Headers         bool `yaml:"headers"`
	HorizontalRules bool `yaml:"horizontalRules"`
	Tables          bool `yaml:"tables"`
}

// Default returns the file configuration matching md2mrkdwn.DefaultConfig.
func Default() *Config {
	return fromConverter(md2mrkdwn.DefaultConfig())
}

// LoadConfig loads configuration from a file path or config name, starting
// from defaults and overlaying only the keys present in the file.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// Converter maps the file configuration onto the library configuration.
// Validation is left to the library constructor.
func (c *Config) Converter() *md2mrkdwn.Config {
	return &md2mrkdwn.Config{
		BulletChar:             c.BulletChar,
		CheckboxChecked:        c.CheckboxChecked,
		CheckboxUnchecked:      c.CheckboxUnchecked,
		HorizontalRuleChar:     c.HorizontalRule.Char,
		HorizontalRuleLength:   c.HorizontalRule.Length,
		HeaderStyle:            c.HeaderStyle,
		LinkFormat:             c.LinkFormat,
		TableMode:              c.TableMode,
		ConvertBold:            c.Convert.Bold,
		ConvertItalic:          c.Convert.Italic,
		ConvertStrikethrough:   c.Convert.Strikethrough,
		ConvertLinks:           c.Convert.Links,
		ConvertImages:          c.Convert.Images,
		ConvertLists:           c.Convert.Lists,
		ConvertTaskLists:       c.Convert.TaskLists,
		ConvertHeaders:         c.Convert.Headers,
		ConvertHorizontalRules: c.Convert.HorizontalRules,
		ConvertTables:          c.Convert.Tables,
	}
}

func fromConverter(cfg *md2mrkdwn.Config) *Config {
	return &Config{
		BulletChar:        cfg.BulletChar,
		CheckboxChecked:   cfg.CheckboxChecked,
		CheckboxUnchecked: cfg.CheckboxUnchecked,
		HorizontalRule: RuleConfig{
			Char:   cfg.HorizontalRuleChar,
			Length: cfg.HorizontalRuleLength,
		},
		HeaderStyle: cfg.HeaderStyle,
		LinkFormat:  cfg.LinkFormat,
		TableMode:   cfg.TableMode,
		Convert: ToggleConfig{
			Bold:            cfg.ConvertBold,
			Italic:          cfg.ConvertItalic,
			Strikethrough:   cfg.ConvertStrikethrough,
			Links:           cfg.ConvertLinks,
			Images:          cfg.ConvertImages,
			Lists:           cfg.ConvertLists,
			TaskLists:       cfg.ConvertTaskLists,
			Headers:         cfg.ConvertHeaders,
			HorizontalRules: cfg.ConvertHorizontalRules,
			Tables:          cfg.ConvertTables,
		},
	}
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/md2mrkdwn/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "md2mrkdwn", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists checks whether a path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
