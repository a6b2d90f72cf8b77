package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/transport"
)

// DefaultServer is the MCP server identifier of the Supabase backend.
const DefaultServer = "supabase"

// Client exposes typed Supabase operations over a Transport. The zero value
// is not usable; construct with NewClient. Client holds no per-call state
// and is safe for concurrent use.
type Client struct {
	// Transport dispatches the underlying tool calls. Required.
	Transport transport.Transport
	// Server overrides the MCP server name. Defaults to DefaultServer.
	Server string
	// Logger records failed calls and skipped records. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// NewClient returns a Client dispatching through t.
func NewClient(t transport.Transport) *Client {
	return &Client{Transport: t}
}

func (c *Client) server() string {
	if c.Server == "" {
		return DefaultServer
	}
	return c.Server
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// invoke dispatches one tool call. Failed outcomes come back as a non-nil
// error wrapping *transport.Failure, so callers can distinguish a failed
// call from a successful call that returned nothing.
func (c *Client) invoke(ctx context.Context, tool string, params map[string]any) (transport.Outcome, error) {
	out := c.Transport.Invoke(ctx, transport.ToolCall{Tool: tool, Server: c.server(), Params: params})
	if err := out.Err(); err != nil {
		c.logger().Warn("tool call failed", "tool", tool, "error", err)
		return out, fmt.Errorf("%s: %w", tool, err)
	}
	return out, nil
}

// record is implemented by every response entity; validate reports the first
// missing required field.
type record interface {
	validate() error
}

// decodeElements unmarshals and validates each element, skipping records
// that cannot be decoded or are missing required fields. A skip never
// aborts the batch.
func decodeElements[T record](logger *slog.Logger, tool string, elements []json.RawMessage) []T {
	items := make([]T, 0, len(elements))
	for i, raw := range elements {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			logger.Warn("skipping malformed record", "tool", tool, "index", i, "error", err)
			continue
		}
		if err := item.validate(); err != nil {
			logger.Warn("skipping record", "tool", tool, "index", i, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items
}

// decodeList extracts the named array from a parsed payload and validates
// each element. Raw outcomes and absent keys yield an empty slice: a
// response without the expected structure is a degraded success, not an
// error.
func decodeList[T record](logger *slog.Logger, out transport.Outcome, tool, key string) []T {
	elements, ok := listElements(logger, out, tool, key)
	if !ok {
		return nil
	}
	return decodeElements[T](logger, tool, elements)
}

func listElements(logger *slog.Logger, out transport.Outcome, tool, key string) ([]json.RawMessage, bool) {
	if out.Kind != transport.KindParsed {
		logger.Debug("tool returned unstructured output", "tool", tool)
		return nil, false
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(out.Payload, &envelope); err != nil {
		logger.Debug("payload is not an object", "tool", tool, "error", err)
		return nil, false
	}
	raw, ok := envelope[key]
	if !ok {
		return nil, false
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		logger.Warn("unexpected payload shape", "tool", tool, "key", key, "error", err)
		return nil, false
	}
	return elements, true
}

// decodeOne unmarshals a single top-level entity. It returns nil when the
// outcome carries no structured payload or the entity fails validation.
func decodeOne[T record](logger *slog.Logger, out transport.Outcome, tool string) *T {
	if out.Kind != transport.KindParsed {
		logger.Debug("tool returned unstructured output", "tool", tool)
		return nil
	}
	var item T
	if err := json.Unmarshal(out.Payload, &item); err != nil {
		logger.Warn("undecodable response", "tool", tool, "error", err)
		return nil
	}
	if err := item.validate(); err != nil {
		logger.Warn("incomplete response", "tool", tool, "error", err)
		return nil
	}
	return &item
}

// textPayload extracts a string result from an outcome: the named key of a
// parsed object, a bare JSON string, or the raw text when the backend did
// not wrap the value.
func textPayload(out transport.Outcome, key string) string {
	switch out.Kind {
	case transport.KindRaw:
		return out.Text
	case transport.KindParsed:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(out.Payload, &obj); err == nil {
			raw, ok := obj[key]
			if !ok {
				return ""
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				return s
			}
			return string(raw)
		}
		var s string
		if err := json.Unmarshal(out.Payload, &s); err == nil {
			return s
		}
		return string(out.Payload)
	default:
		return ""
	}
}
