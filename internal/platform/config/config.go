package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const FileName = "mindmate.yaml"

type Config struct {
	DataDir  string         `yaml:"-"`
	LogMode  string         `yaml:"log_mode"`
	Store    StoreConfig    `yaml:"store"`
	HTTP     HTTPConfig     `yaml:"http"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Assist   AssistConfig   `yaml:"assistant"`
	Billing  BillingConfig  `yaml:"billing"`
}

type StoreConfig struct {
	Backend      string `yaml:"backend"`
	Slot         string `yaml:"slot"`
	DocumentPath string `yaml:"document_path"`
	SQLitePath   string `yaml:"sqlite_path"`
	RedisAddr    string `yaml:"redis_addr"`
	RedisDB      int    `yaml:"redis_db"`
}

type HTTPConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// UpstreamConfig describes where /api/* is forwarded and the outbound HTTP
// proxy used to get there.
type UpstreamConfig struct {
	URL           string `yaml:"url"`
	ProxyHost     string `yaml:"proxy_host"`
	ProxyPort     string `yaml:"proxy_port"`
	ProxyUsername string `yaml:"proxy_username"`
	ProxyPassword string `yaml:"proxy_password"`
}

// AssistConfig leaves Model and Speech empty to take the provider's defaults.
type AssistConfig struct {
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Speech   string `yaml:"speech_model"`
}

type BillingConfig struct {
	ShopID    string `yaml:"shop_id"`
	SecretKey string `yaml:"secret_key"`
	ReturnURL string `yaml:"return_url"`
	TestMode  bool   `yaml:"test_mode"`
}

// New builds the effective configuration: defaults, then the YAML file (an
// explicit path must exist; the default one is optional), then environment.
func New(dataDir, file string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Defaults(dataDir)

	path := file
	if path == "" {
		path = filepath.Join(dataDir, FileName)
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && file == "":
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	applyEnv(&cfg, os.LookupEnv)
	cfg.resolvePaths()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Defaults(dataDir string) Config {
	return Config{
		DataDir: dataDir,
		LogMode: "dev",
		Store: StoreConfig{
			Backend: "file",
			Slot:    "zen-mind-mate-data-v1",
		},
		HTTP: HTTPConfig{
			Addr:        ":3001",
			CORSOrigins: []string{"https://psycholog.windexs.ru"},
		},
		Upstream: UpstreamConfig{URL: "https://api.openai.com"},
		Assist: AssistConfig{
			Provider: "openai",
			BaseURL:  "http://localhost:3001/api",
		},
		Billing: BillingConfig{
			ShopID:    "123456",
			SecretKey: "test_secret_key",
			ReturnURL: "http://localhost:5173/subscription?payment=success",
			TestMode:  true,
		},
	}
}

func (c *Config) resolvePaths() {
	if c.Store.DocumentPath == "" {
		c.Store.DocumentPath = filepath.Join(c.DataDir, "store.json")
	}
	if c.Store.SQLitePath == "" {
		c.Store.SQLitePath = filepath.Join(c.DataDir, "mindmate.db")
	}
}

// ActivePath is the side file holding an in-progress meditation.
func (c Config) ActivePath() string {
	return filepath.Join(c.DataDir, "active-meditation.json")
}

func (c Config) TranscriptDir() string {
	return filepath.Join(c.DataDir, "transcripts")
}

func (c Config) Validate() error {
	switch c.Store.Backend {
	case "file", "sqlite", "redis", "memory":
	default:
		return fmt.Errorf("unsupported store backend %q", c.Store.Backend)
	}
	if c.Store.Backend == "redis" && strings.TrimSpace(c.Store.RedisAddr) == "" {
		return fmt.Errorf("redis backend requires store.redis_addr")
	}
	if strings.TrimSpace(c.Store.Slot) == "" {
		return fmt.Errorf("store slot is required")
	}
	switch c.Assist.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unsupported assistant provider %q", c.Assist.Provider)
	}
	if strings.TrimSpace(c.Upstream.URL) == "" {
		return fmt.Errorf("upstream url is required")
	}
	return nil
}

type lookupFunc func(string) (string, bool)

func applyEnv(c *Config, lookup lookupFunc) {
	str := func(target *string, names ...string) {
		for _, name := range names {
			if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
				*target = strings.TrimSpace(v)
				return
			}
		}
	}
	str(&c.LogMode, "MINDMATE_LOG_MODE")
	str(&c.Store.Backend, "MINDMATE_STORE_BACKEND")
	str(&c.Store.Slot, "MINDMATE_STORE_SLOT")
	str(&c.Store.DocumentPath, "MINDMATE_DOCUMENT_PATH")
	str(&c.Store.SQLitePath, "MINDMATE_SQLITE_PATH")
	str(&c.Store.RedisAddr, "MINDMATE_REDIS_ADDR", "REDIS_ADDR")
	if v, ok := lookup("MINDMATE_REDIS_DB"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.Store.RedisDB = n
		}
	}
	if v, ok := lookup("PORT"); ok && strings.TrimSpace(v) != "" {
		c.HTTP.Addr = ":" + strings.TrimSpace(v)
	}
	str(&c.HTTP.Addr, "MINDMATE_HTTP_ADDR")
	if v, ok := lookup("MINDMATE_CORS_ORIGINS"); ok && strings.TrimSpace(v) != "" {
		c.HTTP.CORSOrigins = splitList(v)
	}
	str(&c.Upstream.URL, "MINDMATE_UPSTREAM_URL")
	str(&c.Upstream.ProxyHost, "MINDMATE_PROXY_HOST", "PROXY_HOST")
	str(&c.Upstream.ProxyPort, "MINDMATE_PROXY_PORT", "PROXY_PORT")
	str(&c.Upstream.ProxyUsername, "MINDMATE_PROXY_USERNAME", "PROXY_USERNAME")
	str(&c.Upstream.ProxyPassword, "MINDMATE_PROXY_PASSWORD", "PROXY_PASSWORD")
	str(&c.Assist.Provider, "MINDMATE_ASSISTANT_PROVIDER")
	str(&c.Assist.BaseURL, "MINDMATE_ASSISTANT_BASE_URL")
	str(&c.Assist.APIKey, "MINDMATE_ASSISTANT_API_KEY", "OPENAI_API_KEY")
	str(&c.Assist.Model, "MINDMATE_ASSISTANT_MODEL")
	str(&c.Billing.ShopID, "MINDMATE_BILLING_SHOP_ID")
	str(&c.Billing.SecretKey, "MINDMATE_BILLING_SECRET_KEY")
	str(&c.Billing.ReturnURL, "MINDMATE_BILLING_RETURN_URL")
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
