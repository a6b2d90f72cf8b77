// Package config manages user-level settings stored at ~/.supamcp/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the MCP server name, CLI binary, call timeouts, and logging destinations,
// with SUPAMCP_* environment variables overriding file values.
package config
