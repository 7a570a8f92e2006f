package config

import (
	"os"
	"testing"
)

// clearConfigEnv, testin makinedeki gerçek env'den etkilenmemesi için
// bilinen tüm anahtarları temizler. t.Setenv kullanmak testi otomatik
// olarak paralel çalışmadan çıkarır, cleanup'ı da kendisi yapar.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT", "DATABASE_PATH",
		"JWT_SECRET", "JWT_ALGO", "JWT_ACCESS_EXPIRY_MINUTES", "JWT_REFRESH_EXPIRY_DAYS",
		"UPLOAD_DIR", "UPLOAD_MAX_SIZE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8000" {
		t.Errorf("Addr() = %q, want %q", cfg.Server.Addr(), "0.0.0.0:8000")
	}
	if cfg.Database.Path != "./data/tarif.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.JWT.Secret != DevJWTSecret {
		t.Errorf("JWT.Secret = %q, want dev fallback", cfg.JWT.Secret)
	}
	if cfg.JWT.Algorithm != "HS256" {
		t.Errorf("JWT.Algorithm = %q, want HS256", cfg.JWT.Algorithm)
	}
	if cfg.JWT.AccessTokenExpiry != 1440 || cfg.JWT.RefreshTokenExpiry != 7 {
		t.Errorf("JWT expiries = %d/%d, want 1440/7",
			cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	}
	if cfg.Upload.MaxSize != 8388608 {
		t.Errorf("Upload.MaxSize = %d, want 8388608", cfg.Upload.MaxSize)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_ALGO", "HS512")
	t.Setenv("JWT_ACCESS_EXPIRY_MINUTES", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
	if cfg.JWT.Secret != "super-secret" || cfg.JWT.Algorithm != "HS512" {
		t.Errorf("JWT = %q/%q", cfg.JWT.Secret, cfg.JWT.Algorithm)
	}
	if cfg.JWT.AccessTokenExpiry != 15 {
		t.Errorf("AccessTokenExpiry = %d, want 15", cfg.JWT.AccessTokenExpiry)
	}
}

func TestLoad_InvalidNumbers(t *testing.T) {
	clearConfigEnv(t)

	for key, val := range map[string]string{
		"SERVER_PORT":               "abc",
		"JWT_ACCESS_EXPIRY_MINUTES": "bir",
		"UPLOAD_MAX_SIZE":           "8MB",
	} {
		t.Setenv(key, val)
		if _, err := Load(); err == nil {
			t.Errorf("Load() with %s=%q: expected error", key, val)
		}
		os.Unsetenv(key)
	}
}
