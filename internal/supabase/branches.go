package supabase

import "context"

// ListBranches lists the development branches of a project.
func (c *Client) ListBranches(ctx context.Context, projectID string) ([]Branch, error) {
	out, err := c.invoke(ctx, "list_branches", map[string]any{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	return decodeList[Branch](c.logger(), out, "list_branches", "branches"), nil
}

// CreateBranch creates a development branch. Branch creation is billed;
// pass the id obtained from ConfirmCost in confirmCostID, or empty to omit
// the key.
func (c *Client) CreateBranch(ctx context.Context, projectID, name, confirmCostID string) (*Branch, error) {
	params := map[string]any{
		"project_id": projectID,
		"name":       name,
	}
	if confirmCostID != "" {
		params["confirm_cost_id"] = confirmCostID
	}

	out, err := c.invoke(ctx, "create_branch", params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Branch](c.logger(), out, "create_branch"), nil
}

// DeleteBranch removes a development branch.
func (c *Client) DeleteBranch(ctx context.Context, branchID string) error {
	_, err := c.invoke(ctx, "delete_branch", map[string]any{"branch_id": branchID})
	return err
}

// MergeBranch merges a branch's migrations and functions into production.
func (c *Client) MergeBranch(ctx context.Context, branchID string) error {
	_, err := c.invoke(ctx, "merge_branch", map[string]any{"branch_id": branchID})
	return err
}

// ResetBranch rewinds a branch, optionally to a specific migration version;
// an empty version omits the key and resets to the beginning.
func (c *Client) ResetBranch(ctx context.Context, branchID, migrationVersion string) error {
	params := map[string]any{"branch_id": branchID}
	if migrationVersion != "" {
		params["migration_version"] = migrationVersion
	}
	_, err := c.invoke(ctx, "reset_branch", params)
	return err
}

// RebaseBranch replays production migrations onto a branch to catch it up.
func (c *Client) RebaseBranch(ctx context.Context, branchID string) error {
	_, err := c.invoke(ctx, "rebase_branch", map[string]any{"branch_id": branchID})
	return err
}
