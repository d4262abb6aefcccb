package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultPath is where data lives when no config or env overrides it.
const DefaultPath = "~/.meditary.db"

type Config interface {
	BasePath() string
}

// LoadConfig resolves the data directory from .meditary.yaml, MEDITARY_* env
// vars and finally DefaultPath.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetConfigName(".meditary") // .yaml is implicit
	v.SetEnvPrefix("MEDITARY")
	v.AutomaticEnv()

	if override := os.Getenv("MEDITARY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path, File: v.ConfigFileUsed()}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	File string `json:"file,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// ConfigFile returns the config file that was read, if any.
func (f *fileConfig) ConfigFile() string {
	return f.File
}
