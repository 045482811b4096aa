// Package prefs persists small string preferences, such as the theme mode,
// between runs.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	EnvPath   = "FREETIMER_CONFIG_PATH"
	envPrefix = "FREETIMER"

	fileName = "prefs"
	fileType = "yaml"
)

// Store is a flat string key-value store. Get reports false for keys that
// were never written.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// ResolveDir picks the preference directory: flag, then FREETIMER_CONFIG_PATH,
// then the OS config dir.
func ResolveDir(flagPath string) (string, error) {
	if flagPath != "" {
		return filepath.Abs(flagPath)
	}
	if envPath := os.Getenv(EnvPath); envPath != "" {
		return filepath.Abs(envPath)
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("locating config dir: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "freetimer"), nil
}

// File is a Store backed by a YAML file. Every Set rewrites the file.
type File struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// Open loads prefs.yaml from dir, creating dir if needed. A missing file is
// not an error; it just means nothing has been stored yet.
func Open(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read prefs: %w", err)
		}
	}

	return &File{v: v, path: filepath.Join(dir, fileName+"."+fileType)}, nil
}

func (f *File) Path() string { return f.path }

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.v.IsSet(key) {
		return "", false
	}
	return f.v.GetString(key), true
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.v.Set(key, value)
	if err := f.v.WriteConfigAs(f.path); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}

// Memory is an in-process Store. The zero value is ready to use.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.m[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.m == nil {
		m.m = make(map[string]string)
	}
	m.m[key] = value
	return nil
}
