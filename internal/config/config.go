package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines browsing defaults, ignore patterns and theme colors.
type Config struct {
	General struct {
		ShowHidden    bool   `yaml:"show_hidden"`    // Include dotfiles in listings
		ConfirmDelete bool   `yaml:"confirm_delete"` // Ask before moving entries to trash
		Debug         bool   `yaml:"debug"`          // Enable debug logging
		StartDir      string `yaml:"start_dir"`      // Directory opened when none is given
	} `yaml:"general"`
	View struct {
		Mode string `yaml:"mode"` // Presentation mode: detail, grid, or compact
		Sort string `yaml:"sort"` // Sort key: name, size, modified, or kind
		Order string `yaml:"order"` // Sort order: asc or desc
	} `yaml:"view"`
	// Ignore lists glob patterns excluded from listings alongside hidden files
	Ignore []string `yaml:"ignore"`
	Theme  struct {
		Name      string `yaml:"name"`      // Theme name (default, dark, light)
		Primary   string `yaml:"primary"`   // Primary color for headers
		Selected  string `yaml:"selected"`  // Color for selected entries
		Directory string `yaml:"directory"` // Color for directory names
		Muted     string `yaml:"muted"`     // Color for metadata columns
		Error     string `yaml:"error"`     // Error message color
	} `yaml:"theme"`
}

// LoadConfig loads configuration from the default location
// (~/.config/skim/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "skim", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset
	// fields. Booleans are pointers so an absent key is distinguishable
	// from an explicit false.
	var tempCfg struct {
		General struct {
			ShowHidden    *bool  `yaml:"show_hidden"`
			ConfirmDelete *bool  `yaml:"confirm_delete"`
			Debug         *bool  `yaml:"debug"`
			StartDir      string `yaml:"start_dir"`
		} `yaml:"general"`
		View struct {
			Mode  string `yaml:"mode"`
			Sort  string `yaml:"sort"`
			Order string `yaml:"order"`
		} `yaml:"view"`
		Ignore []string `yaml:"ignore"`
		Theme  struct {
			Name string `yaml:"name"`
		} `yaml:"theme"`
	}
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.General.ShowHidden != nil {
		cfg.General.ShowHidden = *tempCfg.General.ShowHidden
	}
	if tempCfg.General.ConfirmDelete != nil {
		cfg.General.ConfirmDelete = *tempCfg.General.ConfirmDelete
	}
	if tempCfg.General.Debug != nil {
		cfg.General.Debug = *tempCfg.General.Debug
	}
	if tempCfg.General.StartDir != "" {
		cfg.General.StartDir = tempCfg.General.StartDir
	}
	if tempCfg.View.Mode != "" {
		cfg.View.Mode = tempCfg.View.Mode
	}
	if tempCfg.View.Sort != "" {
		cfg.View.Sort = tempCfg.View.Sort
	}
	if tempCfg.View.Order != "" {
		cfg.View.Order = tempCfg.View.Order
	}
	if len(tempCfg.Ignore) > 0 {
		cfg.Ignore = tempCfg.Ignore
	}
	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.General.ShowHidden = false
	cfg.General.ConfirmDelete = true
	cfg.General.Debug = false
	cfg.General.StartDir = "." // Current directory by default

	cfg.View.Mode = "detail"
	cfg.View.Sort = "name"
	cfg.View.Order = "asc"

	cfg.Ignore = []string{}

	cfg.ApplyTheme("default")

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	validModes := map[string]bool{"detail": true, "grid": true, "compact": true}
	if !validModes[c.View.Mode] {
		return fmt.Errorf("invalid view mode: %s", c.View.Mode)
	}

	validSorts := map[string]bool{"name": true, "size": true, "modified": true, "kind": true}
	if !validSorts[c.View.Sort] {
		return fmt.Errorf("invalid sort key: %s", c.View.Sort)
	}

	validOrders := map[string]bool{"asc": true, "desc": true}
	if !validOrders[c.View.Order] {
		return fmt.Errorf("invalid sort order: %s", c.View.Order)
	}

	// Ignore patterns must compile
	for i, pattern := range c.Ignore {
		if pattern == "" {
			return fmt.Errorf("ignore pattern %d: pattern cannot be empty", i)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("ignore pattern %d (%s): %w", i, pattern, err)
		}
	}

	return nil
}

// IgnoreGlobs compiles the ignore patterns. Patterns that fail to compile
// are skipped; Validate reports them at load time.
func (c *Config) IgnoreGlobs() []glob.Glob {
	globs := make([]glob.Glob, 0, len(c.Ignore))
	for _, pattern := range c.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}
	return globs
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":   "213", // Purple
			"selected":  "114", // Green
			"directory": "39",  // Blue
			"muted":     "245", // Grey
			"error":     "196", // Red
		},
		"dark": {
			"primary":   "105", // Dark Blue
			"selected":  "78",  // Dark Green
			"directory": "33",  // Dark Blue
			"muted":     "241", // Medium Grey
			"error":     "160", // Dark Red
		},
		"light": {
			"primary":   "135", // Light Purple
			"selected":  "150", // Light Green
			"directory": "117", // Light Blue
			"muted":     "248", // Grey
			"error":     "210", // Light Red
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Selected = theme["selected"]
	c.Theme.Directory = theme["directory"]
	c.Theme.Muted = theme["muted"]
	c.Theme.Error = theme["error"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light"}
}
