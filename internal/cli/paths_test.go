package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
	if !strings.HasSuffix(dir, "csvgrid") {
		t.Errorf("cacheDir() = %q, should end with 'csvgrid'", dir)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := "/tmp/custom-cache"
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestResolvedConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	c := &CLI{}
	path, err := c.resolvedConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != "/tmp/custom-config/csvgrid/config.toml" {
		t.Errorf("resolvedConfigPath() = %q", path)
	}

	c.configPath = "/etc/csvgrid.toml"
	if path, _ := c.resolvedConfigPath(); path != "/etc/csvgrid.toml" {
		t.Errorf("--config not honoured: %q", path)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"grid.svg", "grid"},
		{"grid.txt", "grid"},
		{"out/grid.md", "out/grid"},
		{"grid", "grid"},
		{"grid.v2", "grid.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.in); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
