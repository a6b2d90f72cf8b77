// Package transport dispatches tool calls to an MCP server through the
// manus-mcp-cli subprocess bridge and normalizes every result into a
// three-way Outcome: parsed JSON, raw text, or a classified failure. The
// Transport interface is the substitution point for in-process fakes.
package transport
