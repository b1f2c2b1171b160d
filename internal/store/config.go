package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// GlobalConfig is the small per-user config (~/.monofocus/config.json).
type GlobalConfig struct {
	// DataDir overrides where the snapshot lives. Empty means the config
	// dir itself.
	DataDir string `json:"dataDir,omitempty"`
	// Format is the default CLI output format ("json").
	Format string `json:"format,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.monofocus).
	if v := strings.TrimSpace(os.Getenv("MONOFOCUS_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".monofocus"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SaveConfig(cfg *GlobalConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o644)
}

// ResolveDataDir picks the snapshot directory: explicit flag, then
// MONOFOCUS_DIR, then config dataDir, then the config dir itself.
func ResolveDataDir(flagDir string) (string, error) {
	if d := strings.TrimSpace(flagDir); d != "" {
		return d, nil
	}
	if d := strings.TrimSpace(os.Getenv("MONOFOCUS_DIR")); d != "" {
		return d, nil
	}
	cfg, err := LoadConfig()
	if err != nil {
		return "", err
	}
	if d := strings.TrimSpace(cfg.DataDir); d != "" {
		return d, nil
	}
	return ConfigDir()
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
