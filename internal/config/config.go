// Package config manages the operator-facing game configuration: the
// victory flag, the prize message and display settings, stored as JSON
// found through a search path. Values are addressed with dot notation
// ("victory.flag_content") so the flag CLI and the engine share one
// accessor.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// FileName is the configuration file the search path looks for.
const FileName = "game_config.json"

// fallbackMessage is used when the configured prize template is broken.
const fallbackMessage = "🏆 YOUR PRIZE: {flag}\n\nYou have proven yourself worthy of the ancient secrets!"

var (
	ErrReadOnly     = errors.New("configuration is read-only")
	ErrEmptyContent = errors.New("flag content cannot be empty")
)

// Config holds the merged configuration and where it came from. Safe for
// concurrent use; the watcher reloads it while the game reads it.
type Config struct {
	mu       sync.RWMutex
	data     map[string]any
	path     string // explicit path, empty means search
	source   string // file actually loaded, empty means defaults only
	readOnly bool
	log      *zap.Logger
}

// Defaults returns the stock configuration tree.
func Defaults() map[string]any {
	return map[string]any{
		"victory": map[string]any{
			"flag_content":  "LABYRINTH_MASTER_2024",
			"flag_prefix":   "FLAG{",
			"flag_suffix":   "}",
			"prize_message": fallbackMessage,
		},
		"game": map[string]any{
			"title":   "Labyrinth Terminal",
			"version": "1.0",
		},
		"display": map[string]any{
			"width":    80,
			"show_map": true,
		},
	}
}

// SearchPaths returns the locations probed for a config file, in order:
// working directory, config/ subdirectory, then the user's home.
func SearchPaths() []string {
	paths := []string{FileName, filepath.Join("config", FileName)}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".labyrinth_config.json"))
	}
	return paths
}

// Load builds a Config from the given file, or from the search path when
// path is empty. Loading never fails: broken or missing files fall back
// to defaults with a logged warning, and permission problems flip the
// config into read-only mode.
func Load(path string, log *zap.Logger) *Config {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Config{path: path, log: log}
	c.reload()
	return c
}

func (c *Config) reload() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = Defaults()
	c.source = ""
	c.readOnly = false

	file := c.path
	if file == "" {
		for _, candidate := range SearchPaths() {
			if _, err := os.Stat(candidate); err == nil {
				file = candidate
				break
			}
		}
	}
	if file == "" {
		c.log.Info("no configuration file found, using defaults")
		return
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		if os.IsPermission(err) {
			c.log.Error("no permission to read configuration, running read-only", zap.String("file", file), zap.Error(err))
			c.readOnly = true
			return
		}
		c.log.Warn("configuration file unreadable, using defaults", zap.String("file", file), zap.Error(err))
		return
	}

	if len(strings.TrimSpace(string(raw))) == 0 {
		c.log.Warn("configuration file is empty, using defaults", zap.String("file", file))
		c.source = file
		return
	}

	var loaded map[string]any
	if err := json.Unmarshal(raw, &loaded); err != nil {
		c.log.Error("invalid JSON in configuration file, using defaults", zap.String("file", file), zap.Error(err))
		return
	}

	mergeMaps(c.data, loaded)
	c.source = file
	c.log.Info("configuration loaded", zap.String("file", file))
}

// Reload re-reads the configuration from disk.
func (c *Config) Reload() { c.reload() }

// mergeMaps recursively lays override on top of base. Only maps merge;
// any other value replaces.
func mergeMaps(base, override map[string]any) {
	for key, value := range override {
		if overrideMap, ok := value.(map[string]any); ok {
			if baseMap, ok := base[key].(map[string]any); ok {
				mergeMaps(baseMap, overrideMap)
				continue
			}
		}
		base[key] = value
	}
}

// Source returns the file the configuration was loaded from, or the
// empty string when running on defaults.
func (c *Config) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// ReadOnly reports whether saves are refused.
func (c *Config) ReadOnly() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.readOnly
}

// Get resolves a dot-notation path. The second return is false when any
// segment is missing.
func (c *Config) Get(keyPath string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var current any = c.data
	for _, key := range strings.Split(keyPath, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// GetString resolves a path to a string, with a default.
func (c *Config) GetString(keyPath, fallback string) string {
	if v, ok := c.Get(keyPath); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

// GetInt resolves a path to an int, with a default. JSON numbers arrive
// as float64.
func (c *Config) GetInt(keyPath string, fallback int) int {
	v, ok := c.Get(keyPath)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return fallback
}

// GetBool resolves a path to a bool, with a default.
func (c *Config) GetBool(keyPath string, fallback bool) bool {
	if v, ok := c.Get(keyPath); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

// Set writes a value at a dot-notation path, creating intermediate maps
// as needed. Non-map intermediates are replaced.
func (c *Config) Set(keyPath string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(keyPath, ".")
	current := c.data
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// Save writes the configuration atomically: to a temp file first, then
// renamed over the target, so a failed write never corrupts the file.
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.readOnly {
		return ErrReadOnly
	}

	target := c.path
	if target == "" {
		if c.source != "" {
			target = c.source
		} else {
			target = FileName
		}
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create configuration directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(c.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		if os.IsPermission(err) {
			c.readOnly = true
			return fmt.Errorf("%w: %s", ErrReadOnly, target)
		}
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace configuration file: %w", err)
	}

	c.source = target
	c.log.Info("configuration saved", zap.String("file", target))
	return nil
}

// VictoryFlag assembles the complete flag from prefix, content and
// suffix.
func (c *Config) VictoryFlag() string {
	return c.GetString("victory.flag_prefix", "FLAG{") +
		c.GetString("victory.flag_content", "LABYRINTH_MASTER_2024") +
		c.GetString("victory.flag_suffix", "}")
}

// VictoryMessage renders the prize template with the flag substituted.
// A template without the {flag} placeholder falls back to the stock
// message so the flag is never lost.
func (c *Config) VictoryMessage() string {
	template := c.GetString("victory.prize_message", fallbackMessage)
	if !strings.Contains(template, "{flag}") {
		c.log.Warn("prize message template has no {flag} placeholder, using fallback")
		template = fallbackMessage
	}
	return strings.ReplaceAll(template, "{flag}", c.VictoryFlag())
}

// UpdateFlagContent validates new flag content, sets it and persists.
func (c *Config) UpdateFlagContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ErrEmptyContent
	}
	if strings.ContainsAny(trimmed, "\n\r") {
		c.log.Warn("flag content contains newline characters, which may cause display issues")
	}
	c.Set("victory.flag_content", trimmed)
	return c.Save()
}

// Validate returns a list of problems with the current configuration,
// empty when everything required is present.
func (c *Config) Validate() []string {
	var issues []string

	if _, ok := c.Get("victory"); !ok {
		issues = append(issues, "missing 'victory' section")
	} else {
		for _, field := range []string{"flag_content", "flag_prefix", "flag_suffix", "prize_message"} {
			if c.GetString("victory."+field, "") == "" {
				issues = append(issues, fmt.Sprintf("missing or empty 'victory.%s'", field))
			}
		}
		if msg := c.GetString("victory.prize_message", ""); msg != "" && !strings.Contains(msg, "{flag}") {
			issues = append(issues, "prize message template missing {flag} placeholder")
		}
	}
	if _, ok := c.Get("game"); !ok {
		issues = append(issues, "missing 'game' section")
	}
	return issues
}
