package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Default invocation parameters for the manus-mcp-cli bridge.
const (
	DefaultBin         = "manus-mcp-cli"
	DefaultCallTimeout = 30 * time.Second
	DefaultListTimeout = 10 * time.Second
)

// waitDelay unblocks Run if a grandchild inherits the output pipes after the
// child is killed.
const waitDelay = 3 * time.Second

// Transport dispatches tool calls to an MCP server. Implementations return
// exactly one Outcome variant per call and never retry.
type Transport interface {
	// Invoke runs one tool call and classifies the result. It does not
	// return a Go error: launch failures, timeouts and non-zero exits
	// all become failed outcomes.
	Invoke(ctx context.Context, call ToolCall) Outcome

	// ListTools queries the server for its advertised tools.
	ListTools(ctx context.Context, server string) ([]ToolInfo, error)
}

// CLITransport invokes tools through the manus-mcp-cli binary:
//
//	manus-mcp-cli tool call <tool> --server <server> --input <json>
//
// Each call runs under CallTimeout and is force-killed at the deadline. A
// killed call is reported as a failed outcome, never abandoned. The struct
// holds only configuration and is safe for concurrent use.
type CLITransport struct {
	// Bin is the bridge binary, resolved via PATH. Defaults to DefaultBin.
	Bin string
	// CallTimeout bounds each tool invocation. Defaults to DefaultCallTimeout.
	CallTimeout time.Duration
	// ListTimeout bounds tool listings. Defaults to DefaultListTimeout.
	ListTimeout time.Duration
}

// NewCLITransport returns a CLITransport with the default binary and timeouts.
func NewCLITransport() *CLITransport {
	return &CLITransport{
		Bin:         DefaultBin,
		CallTimeout: DefaultCallTimeout,
		ListTimeout: DefaultListTimeout,
	}
}

func (t *CLITransport) bin() string {
	if t.Bin == "" {
		return DefaultBin
	}
	return t.Bin
}

func (t *CLITransport) callTimeout() time.Duration {
	if t.CallTimeout <= 0 {
		return DefaultCallTimeout
	}
	return t.CallTimeout
}

func (t *CLITransport) listTimeout() time.Duration {
	if t.ListTimeout <= 0 {
		return DefaultListTimeout
	}
	return t.ListTimeout
}

// Invoke executes one tool call and classifies the result:
//
//	exit 0, stdout is JSON  -> parsed payload
//	exit 0, stdout not JSON -> raw text, preserved character-for-character
//	exit non-zero           -> failed, with stderr and the exit code
//	deadline exceeded       -> failed, child killed, no exit code
//	launch failure          -> failed, no exit code
func (t *CLITransport) Invoke(ctx context.Context, call ToolCall) Outcome {
	params := call.Params
	if params == nil {
		params = map[string]any{}
	}
	input, err := json.Marshal(params)
	if err != nil {
		return FailedOutcome(fmt.Sprintf("serializing parameters for %s: %v", call.Tool, err), nil)
	}

	tctx, cancel := context.WithTimeout(ctx, t.callTimeout())
	defer cancel()

	cmd := exec.CommandContext(tctx, t.bin(),
		"tool", "call", call.Tool,
		"--server", call.Server,
		"--input", string(input),
	)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr == nil {
		// The deadline may fire between a clean exit and this check;
		// a completed call still counts as completed.
		return classifyStdout(stdout.Bytes())
	}

	if ctxErr := tctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return FailedOutcome(fmt.Sprintf("tool %s timed out after %s", call.Tool, t.callTimeout()), nil)
		}
		return FailedOutcome(fmt.Sprintf("tool %s canceled before completion", call.Tool), nil)
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		code := exitErr.ExitCode()
		return FailedOutcome(stderr.String(), &code)
	}
	return FailedOutcome(fmt.Sprintf("launching %s: %v", t.bin(), runErr), nil)
}

// classifyStdout distinguishes structured from plain-text success output.
func classifyStdout(out []byte) Outcome {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		payload := make(json.RawMessage, len(trimmed))
		copy(payload, trimmed)
		return ParsedOutcome(payload)
	}
	return RawOutcome(string(out))
}

// ListTools runs `tool list --server <server>` and parses tool names from
// lines of the form "Tool: <name>". Indented lines following a tool entry
// are collected as its description.
func (t *CLITransport) ListTools(ctx context.Context, server string) ([]ToolInfo, error) {
	tctx, cancel := context.WithTimeout(ctx, t.listTimeout())
	defer cancel()

	cmd := exec.CommandContext(tctx, t.bin(), "tool", "list", "--server", server)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(tctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("listing tools on %s: timed out after %s", server, t.listTimeout())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = "no error output"
			}
			return nil, fmt.Errorf("listing tools on %s (exit %d): %s", server, exitErr.ExitCode(), msg)
		}
		return nil, fmt.Errorf("launching %s: %w", t.bin(), err)
	}

	return parseToolList(stdout.String()), nil
}

// parseToolList extracts tool entries from the bridge's human-readable
// listing format.
func parseToolList(out string) []ToolInfo {
	var tools []ToolInfo
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(trimmed, "Tool:"); ok {
			tools = append(tools, ToolInfo{Name: strings.TrimSpace(name)})
			continue
		}
		indented := strings.TrimLeft(line, " \t") != line
		if indented && trimmed != "" && len(tools) > 0 {
			last := &tools[len(tools)-1]
			if last.Description == "" {
				last.Description = trimmed
			} else {
				last.Description += " " + trimmed
			}
		}
	}
	return tools
}
