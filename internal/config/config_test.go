package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %s, want 8080", cfg.ServerPort)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.BcryptCost)
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("AllowedOrigins = %v, want nil", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_EXPIRY_HOURS", "3")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	if cfg.ServerPort != "9000" {
		t.Errorf("ServerPort = %s, want 9000", cfg.ServerPort)
	}
	if cfg.JWTExpiry != 3*time.Hour {
		t.Errorf("JWTExpiry = %v, want 3h", cfg.JWTExpiry)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestUserSessionKey(t *testing.T) {
	key := SessionKey.UserSessionKey("abc-123")
	if key != "session:user:abc-123" {
		t.Errorf("key = %s", key)
	}
}
