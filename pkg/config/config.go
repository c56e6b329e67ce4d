package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml.sample
var configTemplate string

// Config holds the everfind configuration: where the index database lives,
// which directories to index and which names to skip.
type Config struct {
	IndexPath string   `toml:"index_path"`
	Roots     []string `toml:"roots"`
	Exclude   []string `toml:"exclude"`
}

// GetDefaultConfig returns a configuration with the index database in the
// default data directory and no roots configured.
func GetDefaultConfig() (*Config, error) {
	indexPath, err := GetDefaultIndexPath()
	if err != nil {
		return nil, fmt.Errorf("getting default index path: %w", err)
	}
	return &Config{IndexPath: indexPath}, nil
}

// LoadConfig reads the configuration from configPath. A missing file yields
// the default configuration instead of an error.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.IndexPath == "" {
		indexPath, err := GetDefaultIndexPath()
		if err != nil {
			return nil, fmt.Errorf("getting default index path: %w", err)
		}
		config.IndexPath = indexPath
	}

	return &config, nil
}

// SaveConfig writes the configuration to configPath, creating the parent
// directory if needed.
func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveTemplateConfig writes an annotated sample configuration to configPath.
func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	indexPath := c.IndexPath
	if indexPath == "" {
		var err error
		indexPath, err = GetDefaultIndexPath()
		if err != nil {
			return fmt.Errorf("getting default index path: %w", err)
		}
	}

	template := strings.Replace(configTemplate, "/home/user/.local/share/everfind/index.db", indexPath, 1)
	return os.WriteFile(configPath, []byte(template), 0644)
}

// GetDefaultStorageDir returns the default data directory for the index,
// honoring XDG_DATA_HOME.
func GetDefaultStorageDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	dir := filepath.Join(dataDir, "everfind")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating storage directory %s: %w", dir, err)
	}

	return dir, nil
}

// GetDefaultIndexPath returns the default index database path.
func GetDefaultIndexPath() (string, error) {
	storageDir, err := GetDefaultStorageDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(storageDir, "index.db"), nil
}

// GetConfigDir returns the configuration directory, honoring XDG_CONFIG_HOME.
func GetConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configDir, "everfind")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	return dir, nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
