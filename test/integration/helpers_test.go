//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// stubServerScript impersonates manus-mcp-cli fronting a Supabase server
// with one organization and one project. Structured tools answer JSON on
// stdout; generate_typescript_types answers plain text; echo_params and
// explode exist for transport-level assertions.
const stubServerScript = `#!/bin/sh
if [ "$1" = "--version" ]; then
  printf 'manus-mcp-cli version 1.4.0\n'
  exit 0
fi

if [ "$1" = "tool" ] && [ "$2" = "list" ]; then
  cat <<'EOF'
Tool: list_organizations
    List organizations the token can see
Tool: list_projects
    List all Supabase projects
Tool: get_project
    Get details for a single project
Tool: list_tables
    List database tables
Tool: execute_sql
    Run a SQL statement
Tool: generate_typescript_types
    Generate TypeScript definitions
Tool: search_docs
    Search the Supabase docs
Tool: get_logs
    Fetch service logs
EOF
  exit 0
fi

if [ "$1" = "tool" ] && [ "$2" = "call" ]; then
  case "$3" in
  list_organizations)
    printf '%s' '{"organizations":[{"id":"org-1","name":"Acme Corp","plan":"free"}]}'
    ;;
  list_projects)
    printf '%s' '{"projects":[{"id":"proj-1","name":"demo-app","organization_id":"org-1","region":"us-east-1","status":"ACTIVE_HEALTHY","created_at":"2026-01-05T12:00:00Z"}]}'
    ;;
  get_project)
    printf '%s' '{"id":"proj-1","name":"demo-app","organization_id":"org-1","region":"us-east-1","status":"ACTIVE_HEALTHY","created_at":"2026-01-05T12:00:00Z"}'
    ;;
  list_tables)
    printf '%s' '{"tables":[{"schema":"public","name":"users","rls_enabled":true},{"schema":"public","name":"orders","rls_enabled":false}]}'
    ;;
  execute_sql)
    printf '%s' '{"rows":[{"count":42}]}'
    ;;
  generate_typescript_types)
    printf 'export type Json = string | number | boolean\nexport interface Database {}\n'
    ;;
  search_docs)
    printf '%s' '{"searchDocs":{"nodes":[{"title":"Row Level Security","href":"https://supabase.com/docs/guides/auth/row-level-security"}]}}'
    ;;
  get_logs)
    printf '%s' '{"logs":"GET /rest/v1/users 200"}'
    ;;
  echo_params)
    printf '%s' "$7"
    ;;
  explode)
    printf 'server exploded\n' >&2
    exit 5
    ;;
  *)
    printf 'Error: unknown tool %s\n' "$3" >&2
    exit 2
    ;;
  esac
  exit 0
fi

printf 'unexpected arguments: %s\n' "$*" >&2
exit 64
`

// installStubServer drops the fake manus-mcp-cli onto PATH.
func installStubServer(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "manus-mcp-cli")
	if err := os.WriteFile(path, []byte(stubServerScript), 0755); err != nil {
		t.Fatalf("writing stub server: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// assertContains fails if s does not contain substr.
func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("missing %q in:\n%s", substr, s)
	}
}
