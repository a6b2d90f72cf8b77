package supabase

import "context"

// Advisor kinds accepted by GetAdvisors.
const (
	AdvisorSecurity    = "security"
	AdvisorPerformance = "performance"
	AdvisorAll         = "all"
)

// GetAdvisors returns security and performance recommendations for a
// project. Kind selects the category and defaults to AdvisorAll.
func (c *Client) GetAdvisors(ctx context.Context, projectID, kind string) ([]Advisor, error) {
	if kind == "" {
		kind = AdvisorAll
	}

	out, err := c.invoke(ctx, "get_advisors", map[string]any{
		"project_id": projectID,
		"type":       kind,
	})
	if err != nil {
		return nil, err
	}
	return decodeList[Advisor](c.logger(), out, "get_advisors", "advisors"), nil
}
