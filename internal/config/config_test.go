package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testHome points HOME at a temp dir so tests never touch the real
// ~/.supamcp, and resets viper state around each test.
func testHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	Reset()
	t.Cleanup(Reset)
	return home
}

func TestPaths(t *testing.T) {
	home := testHome(t)

	if got, want := Dir(), filepath.Join(home, ".supamcp"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
	if got, want := FilePath(), filepath.Join(home, ".supamcp", "config.yaml"); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
	if got, want := EnvFilePath(), filepath.Join(home, ".supamcp", ".env"); got != want {
		t.Errorf("EnvFilePath() = %q, want %q", got, want)
	}
}

func TestDefaults(t *testing.T) {
	testHome(t)
	Load()

	if got := ServerName(); got != "supabase" {
		t.Errorf("ServerName() = %q, want supabase", got)
	}
	if got := CLIBin(); got != "manus-mcp-cli" {
		t.Errorf("CLIBin() = %q, want manus-mcp-cli", got)
	}
	if got := CallTimeout(); got != 30*time.Second {
		t.Errorf("CallTimeout() = %v, want 30s", got)
	}
	if got := ListTimeout(); got != 10*time.Second {
		t.Errorf("ListTimeout() = %v, want 10s", got)
	}
	if got := LogLevel(); got != "info" {
		t.Errorf("LogLevel() = %q, want info", got)
	}
	if got := LogFile(); !strings.HasSuffix(got, filepath.Join(".supamcp", "supamcp.log")) {
		t.Errorf("LogFile() = %q, want it under ~/.supamcp", got)
	}
	if got := LogMaxSize(); got != 10 {
		t.Errorf("LogMaxSize() = %d, want 10", got)
	}
	if got := LogMaxFiles(); got != 3 {
		t.Errorf("LogMaxFiles() = %d, want 3", got)
	}
	if got := ReportDir(); got != "." {
		t.Errorf("ReportDir() = %q, want .", got)
	}
	if got := ToolsetPath(); got != "" {
		t.Errorf("ToolsetPath() = %q, want empty for embedded default", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	testHome(t)
	t.Setenv("SUPAMCP_SERVER_NAME", "staging")
	t.Setenv("SUPAMCP_CLI_BIN", "/opt/mcp/bin/mcp-cli")
	t.Setenv("SUPAMCP_CLI_TIMEOUT", "45s")
	t.Setenv("SUPAMCP_REPORT_DIR", "/tmp/reports")
	t.Setenv("SUPAMCP_TOOLSET_PATH", "/etc/supamcp/tools.yaml")
	Load()

	if got := ServerName(); got != "staging" {
		t.Errorf("ServerName() = %q, want staging", got)
	}
	if got := CLIBin(); got != "/opt/mcp/bin/mcp-cli" {
		t.Errorf("CLIBin() = %q", got)
	}
	if got := CallTimeout(); got != 45*time.Second {
		t.Errorf("CallTimeout() = %v, want 45s", got)
	}
	if got := ReportDir(); got != "/tmp/reports" {
		t.Errorf("ReportDir() = %q", got)
	}
	if got := ToolsetPath(); got != "/etc/supamcp/tools.yaml" {
		t.Errorf("ToolsetPath() = %q", got)
	}
}

func TestBadDurationFallsBack(t *testing.T) {
	testHome(t)
	t.Setenv("SUPAMCP_CLI_TIMEOUT", "soon")
	Load()

	if got := CallTimeout(); got != 30*time.Second {
		t.Errorf("CallTimeout() = %v, want default 30s for unparseable value", got)
	}
}

func TestSetPersistsAndReloads(t *testing.T) {
	testHome(t)
	Load()

	if err := Set("server.name", "prod"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(FilePath()); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// A fresh load must see the persisted value.
	Reset()
	Load()
	if got := Get("server.name"); got != "prod" {
		t.Errorf("Get(server.name) = %q after reload, want prod", got)
	}
	if got := ServerName(); got != "prod" {
		t.Errorf("ServerName() = %q after reload, want prod", got)
	}
}

func TestLoadFile(t *testing.T) {
	testHome(t)
	path := filepath.Join(t.TempDir(), "alt.yaml")
	if err := os.WriteFile(path, []byte("server:\n  name: alt\n"), 0644); err != nil {
		t.Fatalf("writing alt config: %v", err)
	}

	LoadFile(path)
	if got := ServerName(); got != "alt" {
		t.Errorf("ServerName() = %q, want alt", got)
	}
}

func TestEnsureDir(t *testing.T) {
	home := testHome(t)

	if err := EnsureDir(); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(filepath.Join(home, ".supamcp"))
	if err != nil {
		t.Fatalf("config dir missing: %v", err)
	}
	if !info.IsDir() {
		t.Error("config path is not a directory")
	}

	// Second call must be a no-op.
	if err := EnsureDir(); err != nil {
		t.Fatalf("EnsureDir (repeat): %v", err)
	}
}
