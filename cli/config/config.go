package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"reversewords/app/form"

	"github.com/spf13/viper"
)

const EnvPrefix = "reversewords"

type Config struct {
	Mode     form.Mode
	Ignore   string
	Workers  int
	LogLevel string
}

// New returns a viper instance with defaults and REVERSEWORDS_* environment
// lookups in place. Flags are bound on top by the caller.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("reverse.mode", "default")
	v.SetDefault("reverse.ignore", "")
	v.SetDefault("workers", 4)
	v.SetDefault("log.level", "info")
	return v
}

// ReadFile loads a toml or yaml config file. An empty path is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file %s; %w", path, err)
	}

	if strings.HasSuffix(path, ".toml") {
		v.SetConfigType("toml")
	} else {
		v.SetConfigType("yaml")
	}
	if err = v.ReadConfig(bytes.NewBuffer(b)); err != nil {
		return fmt.Errorf("failed to parse config %s; %w", path, err)
	}
	return nil
}

func Decode(v *viper.Viper) (Config, error) {
	mode, err := form.ParseMode(v.GetString("reverse.mode"))
	if err != nil {
		return Config{}, fmt.Errorf("reverse.mode; %w", err)
	}
	workers := v.GetInt("workers")
	if workers < 1 {
		return Config{}, fmt.Errorf("workers must be positive, got %d", workers)
	}
	return Config{
		Mode:     mode,
		Ignore:   v.GetString("reverse.ignore"),
		Workers:  workers,
		LogLevel: v.GetString("log.level"),
	}, nil
}
