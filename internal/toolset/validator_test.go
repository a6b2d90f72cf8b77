package toolset

import (
	"strings"
	"testing"
)

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid-minimal.yaml", "valid-with-input.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file string
		desc string
	}{
		{"invalid-missing-server.yaml", "missing required server field"},
		{"invalid-bad-tool-name.yaml", "tool name violates pattern"},
		{"invalid-bad-kind.yaml", "kind outside the enum"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for unparseable YAML, got nil")
	}
}

func TestValidationSummary(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-kind.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	summary := result.Summary()
	if summary == "" || summary == "valid" {
		t.Errorf("Summary() = %q for an invalid result", summary)
	}
	if !strings.Contains(summary, "/tools/0") {
		t.Errorf("Summary() does not point at the offending tool: %q", summary)
	}
}

func TestInputValidator(t *testing.T) {
	ts, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	v := NewInputValidator(ts)

	tests := []struct {
		name   string
		tool   string
		params map[string]any
		valid  bool
	}{
		{
			name:   "valid get_project",
			tool:   "get_project",
			params: map[string]any{"id": "p1"},
			valid:  true,
		},
		{
			name:   "missing required id",
			tool:   "get_project",
			params: map[string]any{},
			valid:  false,
		},
		{
			name:   "unknown parameter rejected",
			tool:   "get_project",
			params: map[string]any{"id": "p1", "verbose": true},
			valid:  false,
		},
		{
			name:   "advisor type outside enum",
			tool:   "get_advisors",
			params: map[string]any{"project_id": "p1", "type": "everything"},
			valid:  false,
		},
		{
			name:   "advisor type in enum",
			tool:   "get_advisors",
			params: map[string]any{"project_id": "p1", "type": "security"},
			valid:  true,
		},
		{
			name: "deploy files shape",
			tool: "deploy_edge_function",
			params: map[string]any{
				"project_id": "p1",
				"name":       "hello",
				"files":      []any{map[string]any{"name": "index.ts", "content": "serve()"}},
			},
			valid: true,
		},
		{
			name: "deploy files missing content",
			tool: "deploy_edge_function",
			params: map[string]any{
				"project_id": "p1",
				"name":       "hello",
				"files":      []any{map[string]any{"name": "index.ts"}},
			},
			valid: false,
		},
		{
			name:   "confirm_cost numeric amount",
			tool:   "confirm_cost",
			params: map[string]any{"type": "branch", "recurrence": "hourly", "amount": 0.01344},
			valid:  true,
		},
		{
			name:   "nil params on no-arg tool",
			tool:   "list_projects",
			params: nil,
			valid:  true,
		},
		{
			name:   "undeclared tool passes",
			tool:   "not_a_known_tool",
			params: map[string]any{"anything": "goes"},
			valid:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.ValidateInput(tt.tool, tt.params)
			if err != nil {
				t.Fatalf("ValidateInput error: %v", err)
			}
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (issues: %s)", result.Valid, tt.valid, result.Summary())
			}
		})
	}
}

func TestInputValidator_IssueNamesProperty(t *testing.T) {
	ts, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	v := NewInputValidator(ts)

	result, err := v.ValidateInput("execute_sql", map[string]any{"project_id": "p1"})
	if err != nil {
		t.Fatalf("ValidateInput error: %v", err)
	}
	if result.Valid {
		t.Fatal("params without query accepted")
	}
	if !strings.Contains(result.Summary(), "query") {
		t.Errorf("issues do not name the missing property: %s", result.Summary())
	}
}
