package supabase

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestProjectValidate(t *testing.T) {
	complete := Project{
		ID:             "p1",
		Name:           "alpha",
		OrganizationID: "o1",
		Region:         "us-east-1",
		Status:         "ACTIVE_HEALTHY",
		CreatedAt:      "2024-01-01T00:00:00Z",
	}
	if err := complete.validate(); err != nil {
		t.Errorf("complete project rejected: %v", err)
	}

	tests := []struct {
		field string
		unset func(*Project)
	}{
		{"id", func(p *Project) { p.ID = "" }},
		{"name", func(p *Project) { p.Name = "" }},
		{"organization_id", func(p *Project) { p.OrganizationID = "" }},
		{"region", func(p *Project) { p.Region = "" }},
		{"status", func(p *Project) { p.Status = "" }},
		{"created_at", func(p *Project) { p.CreatedAt = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			p := complete
			tt.unset(&p)
			err := p.validate()
			if err == nil {
				t.Fatalf("project without %s accepted", tt.field)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name the field %q", err, tt.field)
			}
		})
	}
}

func TestTableQualified(t *testing.T) {
	if got := (Table{Name: "posts"}).Qualified(); got != "public.posts" {
		t.Errorf("Qualified() = %q, want public.posts", got)
	}
	if got := (Table{Schema: "auth", Name: "users"}).Qualified(); got != "auth.users" {
		t.Errorf("Qualified() = %q, want auth.users", got)
	}
}

func TestAdvisorSeverity(t *testing.T) {
	if got := (Advisor{Message: "m"}).Severity(); got != "info" {
		t.Errorf("Severity() = %q, want info", got)
	}
	if got := (Advisor{Message: "m", Level: "critical"}).Severity(); got != "critical" {
		t.Errorf("Severity() = %q, want critical", got)
	}
}

func TestEdgeFunctionVersionTolerance(t *testing.T) {
	var numeric EdgeFunction
	if err := json.Unmarshal([]byte(`{"name": "hello", "version": 3}`), &numeric); err != nil {
		t.Fatalf("numeric version rejected: %v", err)
	}
	if numeric.VersionLabel() != "3" {
		t.Errorf("VersionLabel() = %q, want 3", numeric.VersionLabel())
	}

	var str EdgeFunction
	if err := json.Unmarshal([]byte(`{"name": "hello", "version": "3"}`), &str); err != nil {
		t.Fatalf("string version rejected: %v", err)
	}
	if str.VersionLabel() != "3" {
		t.Errorf("VersionLabel() = %q, want 3", str.VersionLabel())
	}

	if (EdgeFunction{Name: "hello"}).VersionLabel() != "unknown" {
		t.Error("missing version should render as unknown")
	}
}

func TestRequiredFieldTable(t *testing.T) {
	tests := []struct {
		name   string
		entity record
		valid  bool
	}{
		{"organization complete", Organization{ID: "o1", Name: "acme"}, true},
		{"organization without name", Organization{ID: "o1"}, false},
		{"table complete", Table{Name: "posts"}, true},
		{"table without name", Table{Schema: "public"}, false},
		{"extension complete", Extension{Name: "pgcrypto"}, true},
		{"extension without name", Extension{Version: "1.3"}, false},
		{"migration complete", Migration{Version: "20240101000000"}, true},
		{"migration without version", Migration{Name: "init"}, false},
		{"advisor complete", Advisor{Message: "enable RLS"}, true},
		{"advisor without message", Advisor{Type: "security"}, false},
		{"branch complete", Branch{ID: "b1", Name: "main"}, true},
		{"branch without id", Branch{Name: "main"}, false},
		{"edge function complete", EdgeFunction{Name: "hello"}, true},
		{"edge function without name", EdgeFunction{Slug: "hello"}, false},
		{"doc result complete", DocResult{Title: "Auth", Href: "https://x"}, true},
		{"doc result without href", DocResult{Title: "Auth"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.validate()
			if tt.valid && err != nil {
				t.Errorf("valid entity rejected: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("invalid entity accepted")
			}
		})
	}
}
