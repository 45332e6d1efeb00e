package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName    = "config"
	configType    = "toml"
	configDirName = ".mallctl"
	configFile    = "config.toml"

	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"

	baseURLKey    = "api.base_url"
	timeoutKey    = "api.timeout_seconds"
	storageDirKey = "storage.dir"

	defaultBaseURL        = "https://api.mall.com/api"
	defaultTimeoutSeconds = 10
)

type Config struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
}

type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type StorageConfig struct {
	Dir string `toml:"dir"`
}

func (c Config) Timeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Load reads ~/.mallctl/config.toml, falling back to defaults when the file
// is absent.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, configDirName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(timeoutKey, defaultTimeoutSeconds)
	cfg.SetDefault(storageDirKey, filepath.Join(configDir, "storage"))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		API: APIConfig{
			BaseURL:        cfg.GetString(baseURLKey),
			TimeoutSeconds: cfg.GetInt(timeoutKey),
		},
		Storage: StorageConfig{
			Dir: cfg.GetString(storageDirKey),
		},
	}

	if loaded.API.BaseURL == "" {
		return Config{}, errors.New("api base url is empty")
	}
	if loaded.Storage.Dir == "" {
		return Config{}, errors.New("storage dir is empty")
	}

	return loaded, nil
}

// Save writes the config atomically to the given path.
func Save(cfg Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	return nil
}

// DefaultPath returns the canonical config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDirName, configFile), nil
}
