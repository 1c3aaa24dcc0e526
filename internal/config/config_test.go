package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mixlab.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadProjectConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		doc := `profile: alex
version: 1
database:
  driver: SQLite
  dsn: sqlite://mixlab.db
knowledge: knowledge.yaml
catalog: catalog.yaml
`
		cfg, err := LoadProjectConfig(writeTempConfig(t, doc))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Profile != "alex" {
			t.Fatalf("Profile = %s, want alex", cfg.Profile)
		}
		if cfg.Database.Driver != DriverSQLite {
			t.Fatalf("Driver = %s, want normalized sqlite", cfg.Database.Driver)
		}
		if cfg.Catalog != "catalog.yaml" {
			t.Fatalf("Catalog = %s, want catalog.yaml", cfg.Catalog)
		}
	})

	t.Run("postgres driver", func(t *testing.T) {
		doc := "profile: alex\nversion: 1\ndatabase:\n  driver: postgres\n  dsn: postgres://localhost/mixlab\n"
		cfg, err := LoadProjectConfig(writeTempConfig(t, doc))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Database.Driver != DriverPostgres {
			t.Fatalf("Driver = %s, want postgres", cfg.Database.Driver)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		doc := "version: 1\ndatabase:\n  driver: sqlite\n  dsn: sqlite://mixlab.db\n"
		if _, err := LoadProjectConfig(writeTempConfig(t, doc)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		doc := "profile: alex\nversion: 2\ndatabase:\n  driver: sqlite\n  dsn: sqlite://mixlab.db\n"
		if _, err := LoadProjectConfig(writeTempConfig(t, doc)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		doc := "profile: alex\nversion: 1\ndatabase:\n  driver: oracle\n  dsn: x\n"
		if _, err := LoadProjectConfig(writeTempConfig(t, doc)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing driver", func(t *testing.T) {
		doc := "profile: alex\nversion: 1\ndatabase:\n  dsn: x\n"
		if _, err := LoadProjectConfig(writeTempConfig(t, doc)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing dsn", func(t *testing.T) {
		doc := "profile: alex\nversion: 1\ndatabase:\n  driver: sqlite\n"
		if _, err := LoadProjectConfig(writeTempConfig(t, doc)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadProjectConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		if _, err := LoadProjectConfig(writeTempConfig(t, "profile: [unterminated")); err == nil {
			t.Fatalf("expected error")
		}
	})
}
