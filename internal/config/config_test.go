package config_test

import (
	"testing"

	"github.com/geocoder89/campushub/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Env:                 "test",
		Port:                3000,
		MongoURI:            "mongodb://127.0.0.1:27017",
		MongoDB:             "campushub",
		JWTSecret:           "test-secret-key",
		JWTAccessTTLMinutes: 60,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c *config.Config) {},
		},
		{
			name:    "missing secret is fatal",
			mutate:  func(c *config.Config) { c.JWTSecret = "" },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *config.Config) { c.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "non-positive ttl",
			mutate:  func(c *config.Config) { c.JWTAccessTTLMinutes = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr && err == nil {
				t.Fatal("expected an error")
			}

			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
