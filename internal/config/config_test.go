package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsLocalMode(t *testing.T) {
	t.Setenv("GIGLOG_CONFIG", filepath.Join(t.TempDir(), "config.yml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Remote() {
		t.Error("missing config should mean local mode")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	t.Setenv("GIGLOG_CONFIG", path)

	saved := &Config{
		ServerURL: "https://giglog.example.com",
		Token:     "abc123",
		Email:     "user@example.com",
	}
	if err := Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 0600", perm)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("Load = %+v, want %+v", loaded, saved)
	}
	if !loaded.Remote() {
		t.Error("config with server and token should be remote mode")
	}
}

func TestServerAddrDefaultsPort(t *testing.T) {
	t.Setenv("GIGLOG_PORT", "")
	if addr := ServerAddr(); addr != ":8080" {
		t.Errorf("ServerAddr = %q, want :8080", addr)
	}

	t.Setenv("GIGLOG_PORT", "9000")
	if addr := ServerAddr(); addr != ":9000" {
		t.Errorf("ServerAddr = %q, want :9000", addr)
	}
}
