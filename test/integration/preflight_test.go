//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/doctor"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/toolset"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/transport"
)

func stubToolset() *toolset.Toolset {
	names := []string{
		"execute_sql", "generate_typescript_types", "get_logs", "get_project",
		"list_organizations", "list_projects", "list_tables", "search_docs",
	}
	ts := &toolset.Toolset{Name: "supabase", Server: "supabase", MinCLIVersion: "1.0.0"}
	for _, n := range names {
		ts.Tools = append(ts.Tools, toolset.Tool{Name: n})
	}
	return ts
}

// TestPreflight runs the doctor checks against the stub bridge: binary
// lookup, --version probing, and a live tool listing all go through real
// subprocesses.
func TestPreflight(t *testing.T) {
	installStubServer(t)
	t.Setenv("SUPABASE_ACCESS_TOKEN", "sbp_0102030405")

	var buf bytes.Buffer
	failures := doctor.Run(context.Background(), &buf, doctor.Options{
		Bin:       "manus-mcp-cli",
		Server:    "supabase",
		Toolset:   stubToolset(),
		Transport: transport.NewCLITransport(),
	})

	out := buf.String()
	if failures != 0 {
		t.Fatalf("failures = %d, output:\n%s", failures, out)
	}
	assertContains(t, out, "[ OK ] manus-mcp-cli found at")
	assertContains(t, out, "[ OK ] CLI version 1.4.0 (minimum 1.0.0)")
	assertContains(t, out, "[ OK ] server supabase reachable (8 tools)")
	assertContains(t, out, "[ OK ] all 8 declared tools available")
	if strings.Contains(out, "[FAIL]") || strings.Contains(out, "[MISS]") {
		t.Errorf("unexpected failures in output:\n%s", out)
	}
}

// TestPreflightDetectsDrift declares a tool the stub server does not
// expose and expects a hard failure.
func TestPreflightDetectsDrift(t *testing.T) {
	installStubServer(t)
	t.Setenv("SUPABASE_ACCESS_TOKEN", "sbp_0102030405")

	ts := stubToolset()
	ts.Tools = append(ts.Tools, toolset.Tool{Name: "pause_project"})

	var buf bytes.Buffer
	failures := doctor.Run(context.Background(), &buf, doctor.Options{
		Bin:       "manus-mcp-cli",
		Server:    "supabase",
		Toolset:   ts,
		Transport: transport.NewCLITransport(),
	})

	if failures != 1 {
		t.Fatalf("failures = %d, want 1; output:\n%s", failures, buf.String())
	}
	assertContains(t, buf.String(), "missing from server: pause_project")
}
