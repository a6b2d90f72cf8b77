package transport

// ToolCall names one remote invocation: the tool, the server hosting it, and
// the JSON-serializable parameters. A ToolCall describes exactly one
// dispatch and is not mutated by the transport.
type ToolCall struct {
	// Tool is the remote tool name, e.g. "list_projects".
	Tool string
	// Server is the MCP server identifier passed via --server.
	Server string
	// Params is serialized into a single JSON argument. A nil map
	// serializes as {}. Optional parameters are expressed by absence,
	// never by a null or zero placeholder.
	Params map[string]any
}

// ToolInfo is one entry from a server's advertised tool listing.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
