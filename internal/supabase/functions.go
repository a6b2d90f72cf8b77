package supabase

import "context"

// ListEdgeFunctions lists the edge functions deployed to a project.
func (c *Client) ListEdgeFunctions(ctx context.Context, projectID string) ([]EdgeFunction, error) {
	out, err := c.invoke(ctx, "list_edge_functions", map[string]any{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	return decodeList[EdgeFunction](c.logger(), out, "list_edge_functions", "functions"), nil
}

// GetEdgeFunction fetches one edge function by slug. It returns nil without
// an error when the server produced no structured function.
func (c *Client) GetEdgeFunction(ctx context.Context, projectID, slug string) (*EdgeFunction, error) {
	out, err := c.invoke(ctx, "get_edge_function", map[string]any{
		"project_id":    projectID,
		"function_slug": slug,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne[EdgeFunction](c.logger(), out, "get_edge_function"), nil
}

// FunctionFile is one source file of an edge function deployment.
type FunctionFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// DeployFunctionRequest describes an edge function deployment. Entrypoint
// is optional and omitted from the call when unset.
type DeployFunctionRequest struct {
	Name       string
	Files      []FunctionFile
	Entrypoint string
}

// DeployEdgeFunction creates or updates an edge function from source files.
func (c *Client) DeployEdgeFunction(ctx context.Context, projectID string, req DeployFunctionRequest) (*EdgeFunction, error) {
	params := map[string]any{
		"project_id": projectID,
		"name":       req.Name,
		"files":      req.Files,
	}
	if req.Entrypoint != "" {
		params["entrypoint_path"] = req.Entrypoint
	}

	out, err := c.invoke(ctx, "deploy_edge_function", params)
	if err != nil {
		return nil, err
	}
	return decodeOne[EdgeFunction](c.logger(), out, "deploy_edge_function"), nil
}
