package shared

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("parses a complete file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[api]
base_url = "https://api.example.com"
audience = "https://filmoteca-api"

[auth]
domain = "tenant.example.com"
client_id = "abc123"
redirect_uri = "http://localhost:9000/callback"

[server]
host = "localhost"
port = 9000

[session]
path = "/tmp/session.db"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if config.API.BaseURL != "https://api.example.com" {
			t.Errorf("unexpected base url: %q", config.API.BaseURL)
		}
		if config.Auth.Domain != "tenant.example.com" {
			t.Errorf("unexpected domain: %q", config.Auth.Domain)
		}
		if config.Server.Port != 9000 {
			t.Errorf("unexpected port: %d", config.Server.Port)
		}
		if config.Session.Path != "/tmp/session.db" {
			t.Errorf("unexpected session path: %q", config.Session.Path)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		os.WriteFile(path, []byte("not [valid toml"), 0644)

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected a parse error")
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.API.BaseURL == "" {
		t.Error("expected a default base url")
	}
	if config.Server.Port == 0 {
		t.Error("expected a default callback port")
	}
}

func TestCreateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := CreateConfigFile(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("generated file should parse, got %v", err)
	}
	if config.API.BaseURL == "" {
		t.Error("expected defaults in the generated file")
	}

	if err := CreateConfigFile(path); err == nil {
		t.Error("expected an error when the file already exists")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("complete config", func(t *testing.T) {
		config := DefaultConfig()
		config.Auth.Domain = "tenant.example.com"
		config.Auth.ClientID = "abc123"

		if err := config.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("missing base url", func(t *testing.T) {
		config := &Config{Auth: AuthConfig{Domain: "tenant.example.com", ClientID: "abc"}}

		if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		config := &Config{API: APIConfig{BaseURL: "https://api.example.com"}}

		if err := config.Validate(); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})
}

func TestSessionPath(t *testing.T) {
	t.Run("explicit path passes through", func(t *testing.T) {
		config := &Config{Session: SessionConfig{Path: "/var/lib/filmoteca/session.db"}}

		if got := config.SessionPath(); got != "/var/lib/filmoteca/session.db" {
			t.Errorf("unexpected path: %q", got)
		}
	})

	t.Run("default expands the home directory", func(t *testing.T) {
		config := &Config{}

		got := config.SessionPath()
		if strings.HasPrefix(got, "~") {
			t.Errorf("expected tilde expansion, got %q", got)
		}
		if !strings.HasSuffix(got, filepath.Join(".filmoteca", "session.db")) {
			t.Errorf("expected default location, got %q", got)
		}
	})
}
