package cli

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const defaultServerURL = "http://localhost:4723"

// Config holds defaults read from ~/.mobiledriver/config.ini. All
// fields have working zero-config fallbacks.
type Config struct {
	ServerURL    string
	Capabilities map[string]string
}

// loadConfig reads the config file if present. A missing file is not
// an error; defaults apply.
func loadConfig() (*Config, error) {
	cfg := &Config{
		ServerURL:    defaultServerURL,
		Capabilities: make(map[string]string),
	}

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	// "=" only: vendor-prefixed capability keys contain ":"
	file, err := ini.LoadSources(ini.LoadOptions{KeyValueDelimiters: "="}, path)
	if err != nil {
		return nil, err
	}

	if server := file.Section("server").Key("url").String(); server != "" {
		cfg.ServerURL = server
	}

	for _, key := range file.Section("capabilities").Keys() {
		cfg.Capabilities[key.Name()] = key.String()
	}

	return cfg, nil
}

func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".mobiledriver", "config.ini"), nil
}
