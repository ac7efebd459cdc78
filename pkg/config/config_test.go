package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
app:
  name: testapp
server:
  addr: ":9999"
  allowed_origins:
    - "http://localhost:3000"
providers:
  openai:
    api_key: sk-test
    model: gpt-4o-mini
    enabled: true
  openrouter:
    api_key: or-test
    model: some/model
    base_url: https://openrouter.ai/api/v1
    enabled: false
logging:
  dir: /tmp/test-logs
`)

	cfg := LoadConfig(path)

	if cfg.App.Name != "testapp" {
		t.Errorf("app name = %q", cfg.App.Name)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("origins = %v", cfg.Server.AllowedOrigins)
	}

	name, p := cfg.GetDefaultProvider()
	if name != "openai" || p.Model != "gpt-4o-mini" {
		t.Errorf("default provider = %q %+v", name, p)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(writeConfig(t, "app:\n  name: \"\"\n"))

	if cfg.App.Name != "yojana" {
		t.Errorf("default name = %q", cfg.App.Name)
	}
	if cfg.Server.Addr != ":8787" {
		t.Errorf("default addr = %q", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		t.Error("no default origins")
	}
	if cfg.Logging.Dir != "logs" {
		t.Errorf("default log dir = %q", cfg.Logging.Dir)
	}

	if name, _ := cfg.GetDefaultProvider(); name != "" {
		t.Errorf("unexpected default provider %q", name)
	}
}

func TestLoadConfigEnvKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg := LoadConfig(writeConfig(t, `
providers:
  openai:
    model: gpt-4o-mini
    enabled: true
  openrouter:
    api_key: keep-me
    model: some/model
    enabled: true
`))

	if got := cfg.Providers["openai"].APIKey; got != "sk-from-env" {
		t.Errorf("openai key = %q, want the env value", got)
	}
	if got := cfg.Providers["openrouter"].APIKey; got != "keep-me" {
		t.Errorf("openrouter key = %q, env must not clobber explicit keys", got)
	}
}
