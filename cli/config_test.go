package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.ServerURL != defaultServerURL {
		t.Errorf("ServerURL = %q, want %q", cfg.ServerURL, defaultServerURL)
	}
	if len(cfg.Capabilities) != 0 {
		t.Errorf("Capabilities = %v, want empty", cfg.Capabilities)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".mobiledriver")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}

	content := `[server]
url = http://automation.local:4723

[capabilities]
platformName = Android
appium:automationName = UiAutomator2
`
	if err := os.WriteFile(filepath.Join(configDir, "config.ini"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.ServerURL != "http://automation.local:4723" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.Capabilities["platformName"] != "Android" {
		t.Errorf("platformName = %q, want Android", cfg.Capabilities["platformName"])
	}
	if cfg.Capabilities["appium:automationName"] != "UiAutomator2" {
		t.Errorf("automationName = %q, want UiAutomator2", cfg.Capabilities["appium:automationName"])
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".mobiledriver")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.ini"), []byte("[unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for malformed config")
	}
}
