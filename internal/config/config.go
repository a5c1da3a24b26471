package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, loaded from config.toml
// next to the executable.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig holds storage settings.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20270,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig loads config.toml from the executable's directory, falling
// back to the defaults when the file is absent.
func LoadConfig() (*AppConfig, error) {
	cfg := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if v := os.Getenv("HRKPI_DATA_DIR"); v != "" {
		cfg.Data.DataDir = v
	}
	return cfg, nil
}

// EnsureDataDir creates the data directory and returns its path. A
// relative directory is resolved against the executable's location.
func EnsureDataDir(cfg *AppConfig) (string, error) {
	dataDir := cfg.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}
