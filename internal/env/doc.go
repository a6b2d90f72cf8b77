// Package env handles credential discovery for the Supabase MCP server.
// It loads dotenv files into the process environment at startup, checks
// for the access token the server needs, and redacts sensitive values
// before they are printed.
package env
