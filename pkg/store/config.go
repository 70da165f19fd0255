package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendDiskv  Backend = "diskv"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend converts a configured name to a Backend. Empty means diskv.
func ParseBackend(raw string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(raw))); b {
	case "":
		return BackendDiskv, nil
	case BackendDiskv, BackendSQLite:
		return b, nil
	}
	return "", fmt.Errorf("store: unknown backend %q", raw)
}

type Config interface {
	BasePath() string
	Backend() Backend
}

// LoadConfig reads .life.yaml from $LIFE_CONFIG_PATH or the working
// directory, with LIFE_* environment overrides.
func LoadConfig() (*FileConfig, error) {
	viper.SetDefault("path", "~/.life")
	viper.SetDefault("backend", string(BackendDiskv))
	viper.SetDefault("log.level", "warn")
	viper.SetConfigName(".life") // .yaml is implicit
	viper.SetEnvPrefix("LIFE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("LIFE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding path: %w", err)
	}
	backend, err := ParseBackend(viper.GetString("backend"))
	if err != nil {
		return nil, err
	}

	return &FileConfig{
		Path:     path,
		Store:    backend,
		Level:    viper.GetString("log.level"),
		FileUsed: viper.ConfigFileUsed(),
	}, nil
}

type FileConfig struct {
	Path     string  `json:"path"`
	Store    Backend `json:"backend"`
	Level    string  `json:"logLevel"`
	FileUsed string  `json:"configFile,omitempty"`
}

func (f *FileConfig) BasePath() string {
	return f.Path
}

func (f *FileConfig) Backend() Backend {
	if f.Store == "" {
		return BackendDiskv
	}
	return f.Store
}
