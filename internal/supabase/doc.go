// Package supabase is a typed catalog of Supabase MCP operations built on
// the transport dispatcher. Each operation shapes its parameters (optional
// keys are omitted, never sent as null), decodes the response envelope, and
// skips malformed list records individually instead of failing the batch.
package supabase
