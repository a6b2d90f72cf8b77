package supabase

import (
	"encoding/json"
	"fmt"
)

// Project is one Supabase project. All fields are required; list operations
// skip records that are missing any of them.
type Project struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OrganizationID string `json:"organization_id"`
	Region         string `json:"region"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

func (p Project) validate() error {
	switch {
	case p.ID == "":
		return missingField("id")
	case p.Name == "":
		return missingField("name")
	case p.OrganizationID == "":
		return missingField("organization_id")
	case p.Region == "":
		return missingField("region")
	case p.Status == "":
		return missingField("status")
	case p.CreatedAt == "":
		return missingField("created_at")
	}
	return nil
}

// Organization is one Supabase organization.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Plan string `json:"plan"`
}

func (o Organization) validate() error {
	switch {
	case o.ID == "":
		return missingField("id")
	case o.Name == "":
		return missingField("name")
	}
	return nil
}

// Table is one database table.
type Table struct {
	Schema     string `json:"schema"`
	Name       string `json:"name"`
	RLSEnabled bool   `json:"rls_enabled"`
}

func (t Table) validate() error {
	if t.Name == "" {
		return missingField("name")
	}
	return nil
}

// Qualified returns schema.name, defaulting the schema to "public".
func (t Table) Qualified() string {
	schema := t.Schema
	if schema == "" {
		schema = "public"
	}
	return schema + "." + t.Name
}

// Extension is one installed database extension.
type Extension struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Schema  string `json:"schema"`
}

func (e Extension) validate() error {
	if e.Name == "" {
		return missingField("name")
	}
	return nil
}

// Migration is one applied database migration.
type Migration struct {
	Version string `json:"version"`
	Name    string `json:"name"`
}

func (m Migration) validate() error {
	if m.Version == "" {
		return missingField("version")
	}
	return nil
}

// Advisor is one security or performance recommendation.
type Advisor struct {
	Type    string `json:"type"`
	Level   string `json:"level"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (a Advisor) validate() error {
	if a.Message == "" {
		return missingField("message")
	}
	return nil
}

// Severity returns Level, defaulting to "info" when the backend omits it.
func (a Advisor) Severity() string {
	if a.Level == "" {
		return "info"
	}
	return a.Level
}

// Branch is one development branch of a project.
type Branch struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
}

func (b Branch) validate() error {
	switch {
	case b.ID == "":
		return missingField("id")
	case b.Name == "":
		return missingField("name")
	}
	return nil
}

// EdgeFunction is one deployed edge function. Version tolerates both string
// and numeric encodings.
type EdgeFunction struct {
	ID      string      `json:"id"`
	Slug    string      `json:"slug"`
	Name    string      `json:"name"`
	Status  string      `json:"status"`
	Version json.Number `json:"version"`
}

func (f EdgeFunction) validate() error {
	if f.Name == "" {
		return missingField("name")
	}
	return nil
}

// VersionLabel returns the version for display, or "unknown" when absent.
func (f EdgeFunction) VersionLabel() string {
	if f.Version == "" {
		return "unknown"
	}
	return f.Version.String()
}

// DocResult is one documentation search hit.
type DocResult struct {
	Title   string `json:"title"`
	Href    string `json:"href"`
	Content string `json:"content"`
}

func (d DocResult) validate() error {
	switch {
	case d.Title == "":
		return missingField("title")
	case d.Href == "":
		return missingField("href")
	}
	return nil
}

// SQLResult is the outcome of a SQL statement. Rows holds the decoded
// result set when the backend returned one; Raw preserves the payload
// verbatim when it was not a row set.
type SQLResult struct {
	Rows []map[string]any
	Raw  string
}

// CostEstimate is the price quote for creating a project or branch. Raw
// preserves the payload when the backend did not return a structured quote.
type CostEstimate struct {
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Recurrence string  `json:"recurrence"`
	Raw        string  `json:"-"`
}

func missingField(name string) error {
	return fmt.Errorf("missing field %q", name)
}
