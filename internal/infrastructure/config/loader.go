package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config
// directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading config.toml from dir.
func NewManagerAt(dir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// PANEMUX_LAYOUT_MIN_PANE_WIDTH and friends are picked up automatically.
	v.SetEnvPrefix("PANEMUX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The logging variables predate the config file and keep their names.
	if err := v.BindEnv("logging.level", "PANEMUX_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PANEMUX_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PANEMUX_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PANEMUX_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("logging.file", "PANEMUX_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind PANEMUX_LOG_FILE: %w", err)
	}

	return &Manager{
		viper:     v,
		dir:       dir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing config file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile = filepath.Join(m.dir, configFileName)
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Logging.File = strings.TrimSpace(config.Logging.File)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path of the configuration file, whether or not it
// exists.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configFileName)
}

// Dir returns the configuration directory.
func (m *Manager) Dir() string { return m.dir }

// Exists reports whether the configuration file exists.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.ConfigFile())
	return err == nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("layout.min_pane_width", defaults.Layout.MinPaneWidth)
	m.viper.SetDefault("layout.min_pane_height", defaults.Layout.MinPaneHeight)

	m.viper.SetDefault("focus.prefer_recent", defaults.Focus.PreferRecent)

	m.viper.SetDefault("resize.step", defaults.Resize.Step)

	m.viper.SetDefault("terminal.width", defaults.Terminal.Width)
	m.viper.SetDefault("terminal.height", defaults.Terminal.Height)

	m.setLoggingDefaults(defaults)

	m.viper.SetDefault("debug.validate_tree", defaults.Debug.ValidateTree)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
}
