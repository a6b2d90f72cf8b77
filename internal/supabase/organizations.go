package supabase

import "context"

// ListOrganizations returns the organizations the access token can see.
// A failed call returns an empty slice and the failure as the error.
func (c *Client) ListOrganizations(ctx context.Context) ([]Organization, error) {
	out, err := c.invoke(ctx, "list_organizations", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Organization](c.logger(), out, "list_organizations", "organizations"), nil
}

// GetOrganization fetches one organization by id. It returns nil without an
// error when the server produced no structured organization.
func (c *Client) GetOrganization(ctx context.Context, id string) (*Organization, error) {
	out, err := c.invoke(ctx, "get_organization", map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	return decodeOne[Organization](c.logger(), out, "get_organization"), nil
}
