package supabase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/transport"
)

// Cost kinds accepted by GetCost.
const (
	CostProject = "project"
	CostBranch  = "branch"
)

// GetCost quotes the price of creating a project or branch in an
// organization. An unstructured quote is preserved in CostEstimate.Raw.
func (c *Client) GetCost(ctx context.Context, organizationID, kind string) (*CostEstimate, error) {
	out, err := c.invoke(ctx, "get_cost", map[string]any{
		"type":            kind,
		"organization_id": organizationID,
	})
	if err != nil {
		return nil, err
	}

	switch out.Kind {
	case transport.KindParsed:
		var est CostEstimate
		if err := json.Unmarshal(out.Payload, &est); err != nil {
			return &CostEstimate{Type: kind, Raw: string(out.Payload)}, nil
		}
		if est.Type == "" {
			est.Type = kind
		}
		return &est, nil
	case transport.KindRaw:
		return &CostEstimate{Type: kind, Raw: out.Text}, nil
	default:
		return &CostEstimate{Type: kind}, nil
	}
}

// ConfirmCost acknowledges a quote and returns the confirmation id to pass
// to CreateProject or CreateBranch.
func (c *Client) ConfirmCost(ctx context.Context, est *CostEstimate) (string, error) {
	out, err := c.invoke(ctx, "confirm_cost", map[string]any{
		"type":       est.Type,
		"recurrence": est.Recurrence,
		"amount":     est.Amount,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(textPayload(out, "id")), nil
}
