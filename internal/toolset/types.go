package toolset

// Toolset declares the expected surface of one MCP server.
type Toolset struct {
	Name          string `yaml:"name" json:"name"`
	Server        string `yaml:"server" json:"server"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	MinCLIVersion string `yaml:"min_cli_version,omitempty" json:"min_cli_version,omitempty"`
	Tools         []Tool `yaml:"tools" json:"tools"`
}

// Tool declares one expected tool: its name, the shape of its result, and a
// JSON-schema fragment constraining its input parameters.
type Tool struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Kind labels the result shape: list, single, text or none.
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`
	// ResponseKey names the envelope key carrying the result ("projects",
	// "types", ...). Empty when the payload is the whole response.
	ResponseKey string `yaml:"response_key,omitempty" json:"response_key,omitempty"`
	// Input is a JSON-schema fragment for the tool's parameters.
	Input map[string]any `yaml:"input,omitempty" json:"input,omitempty"`
}

// Tool result kinds.
const (
	KindList   = "list"
	KindSingle = "single"
	KindText   = "text"
	KindNone   = "none"
)

// Tool returns the declared tool with the given name.
func (s *Toolset) Tool(name string) (*Tool, bool) {
	for i := range s.Tools {
		if s.Tools[i].Name == name {
			return &s.Tools[i], true
		}
	}
	return nil, false
}

// Names returns the declared tool names in manifest order.
func (s *Toolset) Names() []string {
	names := make([]string, len(s.Tools))
	for i, tool := range s.Tools {
		names[i] = tool.Name
	}
	return names
}
