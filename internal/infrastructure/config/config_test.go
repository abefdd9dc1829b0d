package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/infrastructure/config"
)

// chdirTemp runs the test from an empty directory so no stray .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })

	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LEDGER_FILE", "")
	os.Unsetenv("LEDGER_FILE")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LedgerFile != "ledger.csv" {
		t.Fatalf("expected default ledger file, got %q", cfg.LedgerFile)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	policy, err := cfg.Policy()
	if err != nil {
		t.Fatalf("unexpected policy error: %v", err)
	}
	if policy != domain.DefaultPolicy() {
		t.Fatalf("expected default policy, got %+v", policy)
	}
}

func TestLoadOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LEDGER_FILE", "/tmp/expenses.csv")
	t.Setenv("LEDGER_VARIANT", "expense")
	t.Setenv("LEDGER_STRICT_LOAD", "true")
	t.Setenv("DISPLAY_CURRENCY", "EUR")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_READ_TIMEOUT", "45s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LedgerFile != "/tmp/expenses.csv" {
		t.Fatalf("expected custom ledger file, got %s", cfg.LedgerFile)
	}

	if cfg.HTTPPort != "9090" || cfg.HTTPReadTimeout != 45*time.Second {
		t.Fatalf("expected HTTP overrides, got port=%s read=%s", cfg.HTTPPort, cfg.HTTPReadTimeout)
	}

	policy, err := cfg.Policy()
	if err != nil {
		t.Fatalf("unexpected policy error: %v", err)
	}
	if policy.Variant != domain.VariantExpense || !policy.StrictLoad {
		t.Fatalf("expected expense variant with strict load, got %+v", policy)
	}
	if cfg.DisplayCurrency != "EUR" {
		t.Fatalf("expected EUR, got %s", cfg.DisplayCurrency)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LEDGER_VARIANT=expense\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("LEDGER_VARIANT", "")
	os.Unsetenv("LEDGER_VARIANT")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}
	if cfg.LedgerVariant != "expense" {
		t.Fatalf("expected variant from .env, got %q", cfg.LedgerVariant)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid duration", "HTTP_READ_TIMEOUT", "not-a-duration"},
		{"invalid bool", "LEDGER_ALLOW_ZERO", "maybe"},
		{"unknown variant", "LEDGER_VARIANT", "crypto"},
		{"unknown currency", "DISPLAY_CURRENCY", "XXXX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(tt.key, tt.value)

			if _, err := config.Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
