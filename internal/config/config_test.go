package config

import (
	"errors"
	"testing"
	"time"
)

func TestValidate_ProductionRequiresRealSigningKey(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "production with placeholder key",
			cfg:     Config{Env: EnvProduction, SigningKey: DefaultSigningKey},
			wantErr: true,
		},
		{
			name:    "production with empty key",
			cfg:     Config{Env: EnvProduction, SigningKey: ""},
			wantErr: true,
		},
		{
			name:    "production with real key",
			cfg:     Config{Env: EnvProduction, SigningKey: "s3cr3t-signing-key"},
			wantErr: false,
		},
		{
			name:    "development with placeholder key",
			cfg:     Config{Env: EnvDevelopment, SigningKey: DefaultSigningKey},
			wantErr: false,
		},
		{
			name:    "test with placeholder key",
			cfg:     Config{Env: EnvTest, SigningKey: DefaultSigningKey},
			wantErr: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrMissingSigningKey) {
					t.Fatalf("expected ErrMissingSigningKey, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestEnvPredicates(t *testing.T) {
	prod := Config{Env: EnvProduction}
	if !prod.IsProduction() || prod.IsTest() {
		t.Fatalf("production predicates wrong: %+v", prod)
	}
	test := Config{Env: EnvTest}
	if test.IsProduction() || !test.IsTest() {
		t.Fatalf("test predicates wrong: %+v", test)
	}
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	// No configs/config.yml exists relative to the test working directory,
	// so Load must fall back to defaults.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("default port: got %q, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("default env: got %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.SigningKey != DefaultSigningKey {
		t.Errorf("default signing key: got %q", cfg.SigningKey)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("default token ttl: got %v, want 24h", cfg.TokenTTL)
	}
}
