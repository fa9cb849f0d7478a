package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where and how the item list is persisted.
type Config interface {
	BasePath() string
	Backend() Backend
	ConfirmClear() bool
	Log() LogConfig
}

// LogConfig selects the log level, format and destination.
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
	File   string `json:"file" mapstructure:"file"`
}

// LoadConfig reads .itemlist.yaml from $ITEMLIST_CONFIG_PATH or the working
// directory, layered under ITEMLIST_* environment variables and any flags
// bound to the global viper instance. A missing config file is not an error.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.itemlist")
	viper.SetDefault("backend", string(BackendDiskv))
	viper.SetDefault("confirm_clear", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.file", "")
	viper.SetConfigName(".itemlist") // .yaml is implicit
	viper.SetEnvPrefix("ITEMLIST")
	viper.AutomaticEnv()

	if override := os.Getenv("ITEMLIST_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:    path,
		Kind:    Backend(viper.GetString("backend")),
		Confirm: viper.GetBool("confirm_clear"),
		Logging: LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
			File:   viper.GetString("log.file"),
		},
	}, nil
}

// StaticConfig returns a Config that ignores the environment. Useful for
// tests and embedding.
func StaticConfig(path string, backend Backend) Config {
	return &fileConfig{Path: path, Kind: backend, Logging: LogConfig{Level: "info", Format: "text"}}
}

type fileConfig struct {
	Path    string    `json:"path"`
	Kind    Backend   `json:"backend"`
	Confirm bool      `json:"confirm_clear"`
	Logging LogConfig `json:"log"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) Backend() Backend { return f.Kind }

func (f *fileConfig) ConfirmClear() bool { return f.Confirm }

func (f *fileConfig) Log() LogConfig { return f.Logging }
