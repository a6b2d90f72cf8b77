package supabase

import (
	"context"
	"strings"
)

// ListProjects returns all projects the access token can see. Records
// missing a required field are skipped and logged, never fatal to the batch.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	out, err := c.invoke(ctx, "list_projects", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Project](c.logger(), out, "list_projects", "projects"), nil
}

// GetProject fetches one project by id. It returns nil without an error
// when the server produced no structured project.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	out, err := c.invoke(ctx, "get_project", map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	return decodeOne[Project](c.logger(), out, "get_project"), nil
}

// CreateProjectRequest names a new project. Region and ConfirmCostID are
// optional and omitted from the call when unset.
type CreateProjectRequest struct {
	Name           string
	OrganizationID string
	Region         string
	ConfirmCostID  string
}

// CreateProject provisions a new project. Project creation is billed; pass
// the id obtained from ConfirmCost in req.ConfirmCostID.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	params := map[string]any{
		"name":            req.Name,
		"organization_id": req.OrganizationID,
	}
	if req.Region != "" {
		params["region"] = req.Region
	}
	if req.ConfirmCostID != "" {
		params["confirm_cost_id"] = req.ConfirmCostID
	}

	out, err := c.invoke(ctx, "create_project", params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Project](c.logger(), out, "create_project"), nil
}

// PauseProject suspends a project.
func (c *Client) PauseProject(ctx context.Context, projectID string) error {
	_, err := c.invoke(ctx, "pause_project", map[string]any{"project_id": projectID})
	return err
}

// RestoreProject resumes a paused project.
func (c *Client) RestoreProject(ctx context.Context, projectID string) error {
	_, err := c.invoke(ctx, "restore_project", map[string]any{"project_id": projectID})
	return err
}

// GetProjectURL returns the project's API base URL.
func (c *Client) GetProjectURL(ctx context.Context, projectID string) (string, error) {
	out, err := c.invoke(ctx, "get_project_url", map[string]any{"project_id": projectID})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(textPayload(out, "url")), nil
}

// GetAnonKey returns the project's anonymous API key.
func (c *Client) GetAnonKey(ctx context.Context, projectID string) (string, error) {
	out, err := c.invoke(ctx, "get_anon_key", map[string]any{"project_id": projectID})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(textPayload(out, "anon_key")), nil
}
