package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Options holds optional file overrides for Load.
type Options struct {
	ConfigFile string // explicit config file path
	EnvFile    string // explicit .env file path
}

// Option is a functional option for Load.
type Option func(*Options)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) Option {
	return func(o *Options) { o.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *Options) { o.EnvFile = path }
}

// Load loads configuration for a service into the provided cfg struct. It
// resolves a YAML config file and a .env file (explicit paths first, then
// standard locations), binds environment variables, and unmarshals the result
// through mapstructure tags.
func Load(serviceName string, cfg any, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	configFile := o.ConfigFile
	if configFile == "" {
		configFile = findFirst(
			fmt.Sprintf("./config/%s.yml", serviceName),
			"./config/config.yml",
			"./config.yml",
		)
	}

	envFile := o.EnvFile
	if envFile == "" {
		envFile = findFirst(
			fmt.Sprintf(".env.%s", serviceName),
			".env",
		)
	}

	// .env first so env overrides below see its variables.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config for %s: %w", serviceName, err)
	}
	return nil
}

// findFirst returns the first path that exists, or "".
func findFirst(paths ...string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
