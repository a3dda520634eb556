// Package config provides configuration loading for streamkit applications.
//
// It uses Viper to load configuration from YAML files and environment
// variables, with optional .env file support via godotenv. Struct fields are
// bound through mapstructure tags.
//
// # Usage
//
//	var cfg AppConfig
//	err := config.Load("my-service", &cfg, config.WithConfigFile("config.yml"))
//
// Environment variables override file values using underscore-separated paths
// (e.g. HTTPCLIENT_BASE_URL for httpclient.base_url).
package config
