// Package doctor runs preflight diagnostics for the MCP bridge: the CLI
// binary, its version against the toolset minimum, credentials, and a
// live round-trip to the Supabase server.
package doctor
