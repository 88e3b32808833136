package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Env              string
	LogLevel         string
	StorageBackend   string
	DataDir          string
	SQLitePath       string
	PostgresDSN      string
	HTTPAddr         string
	StrictValidation bool
	CORSOrigins      []string
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads the process configuration once and panics if it is invalid.
func Load() *Config {
	once.Do(func() {
		_ = LoadDotEnv(".env")
		c, err := New()
		if err != nil {
			panic("Invalid config: " + err.Error())
		}
		cfg = c
	})
	return cfg
}

// New builds a Config from the current environment without caching it.
func New() (*Config, error) {
	dataDir := getEnv("DATA_DIR", "data")
	c := &Config{
		Env:              getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		StorageBackend:   getEnv("STORAGE_BACKEND", BackendFile),
		DataDir:          dataDir,
		SQLitePath:       getEnv("SQLITE_PATH", filepath.Join(dataDir, "dreamwell.db")),
		PostgresDSN:      getEnv("POSTGRES_DSN", ""),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8088"),
		StrictValidation: getBool("STRICT_VALIDATION", false),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile:
		if c.DataDir == "" {
			return errors.New("file storage requires DATA_DIR to be set")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when STORAGE_BACKEND=sqlite")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case BackendMemory:
	default:
		return errors.New("STORAGE_BACKEND must be one of: file, sqlite, postgres, memory")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadDotEnv copies KEY=VALUE lines into the environment without overriding
// variables that are already set.
func LoadDotEnv(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, l := range splitLines(string(data)) {
		l = strings.TrimSpace(l)
		if len(l) == 0 || l[0] == '#' {
			continue
		}
		kv := splitKV(l)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		if _, set := os.LookupEnv(key); set {
			continue
		}
		os.Setenv(key, strings.Trim(strings.TrimSpace(kv[1]), `"'`))
	}
	return nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' || c == '\r' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func splitKV(s string) []string {
	for i, c := range s {
		if c == '=' {
			return []string{s[:i], s[i+1:]}
		}
	}
	return nil
}
