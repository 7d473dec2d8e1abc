package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config provides the base path for the durable store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from a .weekly config file or
// WEEKLY_* environment variables, defaulting to ~/.weekly.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.weekly.db")
	viper.SetConfigName(".weekly") // .yaml is implicit
	viper.SetEnvPrefix("WEEKLY")
	viper.AutomaticEnv()

	if override := os.Getenv("WEEKLY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
