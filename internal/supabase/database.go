package supabase

import (
	"context"
	"encoding/json"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/transport"
)

// ListTables lists database tables for a project. Schemas narrows the
// listing; when none are given the key is omitted and the backend decides.
func (c *Client) ListTables(ctx context.Context, projectID string, schemas ...string) ([]Table, error) {
	params := map[string]any{"project_id": projectID}
	if len(schemas) > 0 {
		params["schemas"] = schemas
	}

	out, err := c.invoke(ctx, "list_tables", params)
	if err != nil {
		return nil, err
	}
	return decodeList[Table](c.logger(), out, "list_tables", "tables"), nil
}

// ListExtensions lists the database extensions installed in a project.
func (c *Client) ListExtensions(ctx context.Context, projectID string) ([]Extension, error) {
	out, err := c.invoke(ctx, "list_extensions", map[string]any{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	return decodeList[Extension](c.logger(), out, "list_extensions", "extensions"), nil
}

// ListMigrations lists the migrations applied to a project.
func (c *Client) ListMigrations(ctx context.Context, projectID string) ([]Migration, error) {
	out, err := c.invoke(ctx, "list_migrations", map[string]any{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	return decodeList[Migration](c.logger(), out, "list_migrations", "migrations"), nil
}

// ApplyMigration runs a named DDL migration against the project database.
func (c *Client) ApplyMigration(ctx context.Context, projectID, name, query string) error {
	_, err := c.invoke(ctx, "apply_migration", map[string]any{
		"project_id": projectID,
		"name":       name,
		"query":      query,
	})
	return err
}

// ExecuteSQL runs a SQL statement against the project database. Structured
// row sets are decoded into Rows; anything else is preserved in Raw.
func (c *Client) ExecuteSQL(ctx context.Context, projectID, query string) (*SQLResult, error) {
	out, err := c.invoke(ctx, "execute_sql", map[string]any{
		"project_id": projectID,
		"query":      query,
	})
	if err != nil {
		return nil, err
	}

	res := &SQLResult{}
	switch out.Kind {
	case transport.KindParsed:
		var rows []map[string]any
		if err := json.Unmarshal(out.Payload, &rows); err == nil {
			res.Rows = rows
			return res, nil
		}
		var envelope struct {
			Rows []map[string]any `json:"rows"`
		}
		if err := json.Unmarshal(out.Payload, &envelope); err == nil && envelope.Rows != nil {
			res.Rows = envelope.Rows
			return res, nil
		}
		res.Raw = string(out.Payload)
	case transport.KindRaw:
		res.Raw = out.Text
	}
	return res, nil
}

// GetLogs fetches recent logs for one project service (api, postgres, auth,
// storage, realtime, ...). Service is optional; when empty the key is
// omitted and the backend picks its default.
func (c *Client) GetLogs(ctx context.Context, projectID, service string) (string, error) {
	params := map[string]any{"project_id": projectID}
	if service != "" {
		params["service"] = service
	}

	out, err := c.invoke(ctx, "get_logs", params)
	if err != nil {
		return "", err
	}
	return textPayload(out, "logs"), nil
}

// GenerateTypes produces TypeScript type definitions from the project's
// database schema. The backend wraps the source in a "types" key; unwrapped
// plain text is returned verbatim.
func (c *Client) GenerateTypes(ctx context.Context, projectID string) (string, error) {
	out, err := c.invoke(ctx, "generate_typescript_types", map[string]any{"project_id": projectID})
	if err != nil {
		return "", err
	}
	return textPayload(out, "types"), nil
}
