// Package config loads service configuration from YAML files and environment
// variables via viper, with optional .env support via godotenv.
//
// Projects embed ServiceConfig in their own config struct and call Load:
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Server server.Config `yaml:"server" mapstructure:"server"`
//	}
//
//	var cfg Config
//	err := config.Load("rpckit", &cfg)
//	cfg.ApplyDefaults()
//	err = cfg.Validate()
package config
