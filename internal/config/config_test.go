package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, expected sqlite", cfg.Database.Driver)
	}
	if cfg.Upload.Backend != "local" {
		t.Errorf("Upload.Backend = %q, expected local", cfg.Upload.Backend)
	}
	if GlobalConfig != cfg {
		t.Error("GlobalConfig not set by Load")
	}
}

func TestLoad_FileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: \"9090\"\ntheme:\n  file: /etc/themes.yaml\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, expected 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, expected default to survive", cfg.Server.Host)
	}
	if cfg.Theme.File != "/etc/themes.yaml" {
		t.Errorf("Theme.File = %q", cfg.Theme.File)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("UPLOAD_BACKEND", "gcs")
	t.Setenv("UPLOAD_BUCKET", "folio-media")
	t.Setenv("UPLOAD_MAX_SIZE_MB", "5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("THEME_FILE", "themes.yaml")
	t.Setenv("SERVER_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := DefaultConfig()
	cfg.overrideFromEnv()

	if cfg.Server.Port != "7000" {
		t.Errorf("Server.Port = %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q", cfg.Database.Driver)
	}
	if cfg.JWT.Secret != "s3cret" {
		t.Errorf("JWT.Secret = %q", cfg.JWT.Secret)
	}
	if cfg.Admin.Password != "hunter2" {
		t.Errorf("Admin.Password = %q", cfg.Admin.Password)
	}
	if cfg.Upload.Backend != "gcs" || cfg.Upload.Bucket != "folio-media" {
		t.Errorf("Upload = %+v", cfg.Upload)
	}
	if cfg.MaxUploadBytes() != 5<<20 {
		t.Errorf("MaxUploadBytes() = %d", cfg.MaxUploadBytes())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Theme.File != "themes.yaml" {
		t.Errorf("Theme.File = %q", cfg.Theme.File)
	}
	if len(cfg.Server.AllowOrigins) != 2 || cfg.Server.AllowOrigins[1] != "https://b.example" {
		t.Errorf("Server.AllowOrigins = %v", cfg.Server.AllowOrigins)
	}
}

func TestParseRedisURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		addr     string
		password string
		db       int
	}{
		{name: "host only", url: "redis://localhost:6379", addr: "localhost:6379"},
		{name: "with db", url: "redis://cache:6380/2", addr: "cache:6380", db: 2},
		{name: "with password", url: "redis://:pw@redis:6379/1", addr: "redis:6379", password: "pw", db: 1},
		{name: "user and password", url: "redis://user:pw@redis:6379", addr: "redis:6379", password: "pw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.parseRedisURL(tt.url)
			if cfg.Redis.Addr != tt.addr {
				t.Errorf("Addr = %q, expected %q", cfg.Redis.Addr, tt.addr)
			}
			if cfg.Redis.Password != tt.password {
				t.Errorf("Password = %q, expected %q", cfg.Redis.Password, tt.password)
			}
			if cfg.Redis.DB != tt.db {
				t.Errorf("DB = %d, expected %d", cfg.Redis.DB, tt.db)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Server.Port = "8181"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Server.Port != "8181" {
		t.Errorf("Server.Port = %q, expected 8181", loaded.Server.Port)
	}
}
