package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/transport"
)

// DefaultDocsLimit bounds documentation searches when the caller passes no
// limit of its own.
const DefaultDocsLimit = 5

// SearchDocs searches the Supabase documentation. The backend speaks a
// GraphQL sublanguage for this tool; the query string is embedded as a
// GraphQL string literal. Hits missing a title or href are skipped.
func (c *Client) SearchDocs(ctx context.Context, query string, limit int) ([]DocResult, error) {
	if limit <= 0 {
		limit = DefaultDocsLimit
	}

	out, err := c.invoke(ctx, "search_docs", map[string]any{
		"graphql_query": buildDocsQuery(query, limit),
	})
	if err != nil {
		return nil, err
	}

	if out.Kind != transport.KindParsed {
		c.logger().Debug("tool returned unstructured output", "tool", "search_docs")
		return nil, nil
	}

	var resp struct {
		SearchDocs struct {
			Nodes []json.RawMessage `json:"nodes"`
		} `json:"searchDocs"`
	}
	if err := json.Unmarshal(out.Payload, &resp); err != nil {
		c.logger().Debug("unexpected search_docs payload", "error", err)
		return nil, nil
	}
	return decodeElements[DocResult](c.logger(), "search_docs", resp.SearchDocs.Nodes), nil
}

// buildDocsQuery renders the searchDocs GraphQL document. GraphQL string
// literals share JSON's escaping rules, so the user query is embedded via
// json.Marshal.
func buildDocsQuery(query string, limit int) string {
	quoted, err := json.Marshal(query)
	if err != nil {
		quoted = []byte(`""`)
	}
	return fmt.Sprintf(`{ searchDocs(query: %s, limit: %d) { nodes { title href content } } }`, quoted, limit)
}
