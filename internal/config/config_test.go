package config

import (
	"testing"
	"time"
)

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	cfg, err := Load("", true)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.Logiless.MerchantID != 1394 {
		t.Fatalf("merchant_id=%d", cfg.Logiless.MerchantID)
	}
	if cfg.Logiless.PageLimit != 50 {
		t.Fatalf("page_limit=%d", cfg.Logiless.PageLimit)
	}
	if cfg.Sync.Window != 24*time.Hour {
		t.Fatalf("window=%v", cfg.Sync.Window)
	}
	if cfg.Sync.TokenKey != "LOGILESS_TOKEN" {
		t.Fatalf("token_key=%q", cfg.Sync.TokenKey)
	}
}

func TestLoad_CredentialsFromEnv(t *testing.T) {
	t.Setenv("LS_LOGILESS_CLIENT_ID", "cid-from-env")
	t.Setenv("LS_LOGILESS_CLIENT_SECRET", "secret-from-env")
	t.Setenv("LS_LOGILESS_REDIRECT_URI", "https://example.com/logiless/callback")
	t.Setenv("LS_REDIS_PASSWORD", "redis-pass")

	cfg, err := Load("", true)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.Logiless.ClientID != "cid-from-env" {
		t.Fatalf("client_id=%q, want cid-from-env", cfg.Logiless.ClientID)
	}
	if cfg.Logiless.ClientSecret != "secret-from-env" {
		t.Fatalf("client_secret=%q", cfg.Logiless.ClientSecret)
	}
	if cfg.Logiless.RedirectURI != "https://example.com/logiless/callback" {
		t.Fatalf("redirect_uri=%q", cfg.Logiless.RedirectURI)
	}
	if cfg.Redis.Password != "redis-pass" {
		t.Fatalf("redis password=%q", cfg.Redis.Password)
	}
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("LS_LOGILESS_MERCHANT_ID", "77")

	cfg, err := Load("", true)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.Logiless.MerchantID != 77 {
		t.Fatalf("merchant_id=%d, want 77", cfg.Logiless.MerchantID)
	}
}
