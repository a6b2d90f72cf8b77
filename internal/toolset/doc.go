// Package toolset declares the tools a Supabase MCP server is expected to
// expose. A toolset manifest carries one entry per tool with its response
// shape and a JSON-schema fragment for its input parameters; the package
// validates manifests against an embedded schema, validates call parameters
// against the per-tool fragments, and diffs expectations against a server's
// advertised tool list.
package toolset
