//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/logging"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/supabase"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/transport"
)

func stubClient() *supabase.Client {
	return &supabase.Client{
		Transport: transport.NewCLITransport(),
		Logger:    logging.Nop(),
	}
}

// TestTypedOperations drives the typed client through the real subprocess
// bridge: list, get, inspect, generate, search.
func TestTypedOperations(t *testing.T) {
	installStubServer(t)
	client := stubClient()
	ctx := context.Background()

	orgs, err := client.ListOrganizations(ctx)
	if err != nil {
		t.Fatalf("ListOrganizations: %v", err)
	}
	if len(orgs) != 1 || orgs[0].Name != "Acme Corp" || orgs[0].Plan != "free" {
		t.Errorf("organizations = %+v", orgs)
	}

	projects, err := client.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != "proj-1" || projects[0].Status != "ACTIVE_HEALTHY" {
		t.Errorf("projects = %+v", projects)
	}

	p, err := client.GetProject(ctx, "proj-1")
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if p == nil || p.Name != "demo-app" || p.Region != "us-east-1" {
		t.Errorf("project = %+v", p)
	}

	tables, err := client.ListTables(ctx, "proj-1", "public")
	if err != nil {
		t.Fatalf("ListTables: %v", err)
	}
	if len(tables) != 2 || tables[0].Qualified() != "public.users" || !tables[0].RLSEnabled {
		t.Errorf("tables = %+v", tables)
	}

	result, err := client.ExecuteSQL(ctx, "proj-1", "SELECT count(*) FROM users")
	if err != nil {
		t.Fatalf("ExecuteSQL: %v", err)
	}
	if len(result.Rows) != 1 || result.Rows[0]["count"] != float64(42) {
		t.Errorf("sql result = %+v", result)
	}

	types, err := client.GenerateTypes(ctx, "proj-1")
	if err != nil {
		t.Fatalf("GenerateTypes: %v", err)
	}
	assertContains(t, types, "export interface Database {}")

	docs, err := client.SearchDocs(ctx, "row level security", 2)
	if err != nil {
		t.Fatalf("SearchDocs: %v", err)
	}
	if len(docs) != 1 || docs[0].Title != "Row Level Security" {
		t.Errorf("docs = %+v", docs)
	}

	logs, err := client.GetLogs(ctx, "proj-1", "api")
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if logs != "GET /rest/v1/users 200" {
		t.Errorf("logs = %q", logs)
	}
}

// TestParameterRoundTrip verifies the exact JSON the bridge receives via
// --input by echoing it back through the subprocess.
func TestParameterRoundTrip(t *testing.T) {
	installStubServer(t)
	tr := transport.NewCLITransport()

	params := map[string]any{
		"project_id": "proj-1",
		"limit":      float64(3),
		"dry_run":    true,
	}
	out := tr.Invoke(context.Background(), transport.ToolCall{
		Tool:   "echo_params",
		Server: "supabase",
		Params: params,
	})
	if out.Kind != transport.KindParsed {
		t.Fatalf("outcome = %+v", out)
	}

	var echoed map[string]any
	if err := json.Unmarshal(out.Payload, &echoed); err != nil {
		t.Fatalf("decoding echoed params: %v", err)
	}
	if !reflect.DeepEqual(echoed, params) {
		t.Errorf("echoed = %v, want %v", echoed, params)
	}
}

// TestFailuresCarryServerError verifies stderr and exit codes survive the
// subprocess boundary into typed failures.
func TestFailuresCarryServerError(t *testing.T) {
	installStubServer(t)
	tr := transport.NewCLITransport()

	out := tr.Invoke(context.Background(), transport.ToolCall{Tool: "explode", Server: "supabase"})
	err := out.Err()
	if err == nil {
		t.Fatal("expected failure outcome")
	}

	var f *transport.Failure
	if !errors.As(err, &f) {
		t.Fatalf("error is %T, want *transport.Failure", err)
	}
	if f.ExitCode == nil || *f.ExitCode != 5 {
		t.Errorf("exit code = %v, want 5", f.ExitCode)
	}
	assertContains(t, f.Message, "server exploded")
}

func TestToolListing(t *testing.T) {
	installStubServer(t)
	tr := transport.NewCLITransport()

	tools, err := tr.ListTools(context.Background(), "supabase")
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	if len(tools) != 8 {
		t.Fatalf("got %d tools, want 8", len(tools))
	}
	if tools[0].Name != "list_organizations" || tools[0].Description == "" {
		t.Errorf("first tool = %+v", tools[0])
	}
}
