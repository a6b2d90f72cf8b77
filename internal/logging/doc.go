// Package logging builds the structured logger used across the CLI.
// Records are JSON, written to a size-rotated file under ~/.supamcp/,
// optionally mirrored to a second writer when running verbose.
package logging
