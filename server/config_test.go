package server_test

import (
	"testing"

	"github.com/skillsenselab/rpckit/server"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg server.Config
	cfg.ApplyDefaults()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.ReadTimeout != 15 || cfg.WriteTimeout != 15 || cfg.IdleTimeout != 60 {
		t.Errorf("timeouts = %d/%d/%d, want 15/15/60", cfg.ReadTimeout, cfg.WriteTimeout, cfg.IdleTimeout)
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		t.Error("CORS.AllowedOrigins should default to a wildcard")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*server.Config)
		wantErr bool
	}{
		{"defaults are valid", func(*server.Config) {}, false},
		{"port out of range", func(c *server.Config) { c.Port = 70000 }, true},
		{"negative read timeout", func(c *server.Config) { c.ReadTimeout = -1 }, true},
		{"negative idle timeout", func(c *server.Config) { c.IdleTimeout = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg server.Config
			cfg.ApplyDefaults()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
