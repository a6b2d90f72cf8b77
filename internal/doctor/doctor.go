package doctor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/env"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/toolset"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/transport"
)

const versionTimeout = 5 * time.Second

// Options configures a preflight run.
type Options struct {
	Bin         string              // MCP CLI binary name or path
	Server      string              // server to round-trip against
	Toolset     *toolset.Toolset    // declared tools; nil skips drift checks
	Transport   transport.Transport // used for the server round-trip
	ListTimeout time.Duration       // deadline for tool discovery
}

// Run executes the preflight checks, writing status lines to w.
// Warnings pass; the return value counts the checks that failed outright.
func Run(ctx context.Context, w io.Writer, opts Options) int {
	failures := 0
	fmt.Fprintln(w, "Preflight check:")

	binPath, err := exec.LookPath(opts.Bin)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found in PATH\n", opts.Bin)
		failures++
	} else {
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", opts.Bin, binPath)
		checkVersion(ctx, w, binPath, opts.Toolset)
	}

	if env.HasToken() {
		fmt.Fprintf(w, "  [ OK ] %s is set\n", env.TokenVar)
	} else {
		fmt.Fprintf(w, "  [WARN] %s not set (most tools will fail with auth errors)\n", env.TokenVar)
	}

	failures += checkServer(ctx, w, opts)

	if failures > 0 {
		fmt.Fprintf(w, "\n  %d check(s) failed.\n", failures)
	}
	return failures
}

// checkVersion gates the CLI version against the toolset minimum.
// Everything here is advisory: an old or unidentifiable CLI may still work.
func checkVersion(ctx context.Context, w io.Writer, binPath string, ts *toolset.Toolset) {
	vctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	version, err := binaryVersion(vctx, binPath)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] could not determine CLI version: %v\n", err)
		return
	}

	if ts == nil || ts.MinCLIVersion == "" {
		fmt.Fprintf(w, "  [ OK ] CLI version %s\n", version)
		return
	}

	ok, err := MinVersionSatisfied(version, ts.MinCLIVersion)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [WARN] could not compare CLI version %s: %v\n", version, err)
	case !ok:
		fmt.Fprintf(w, "  [WARN] CLI version %s below minimum %s\n", version, ts.MinCLIVersion)
	default:
		fmt.Fprintf(w, "  [ OK ] CLI version %s (minimum %s)\n", version, ts.MinCLIVersion)
	}
}

// checkServer round-trips tool discovery and diffs the result against the
// declared toolset. Returns the number of hard failures.
func checkServer(ctx context.Context, w io.Writer, opts Options) int {
	timeout := opts.ListTimeout
	if timeout <= 0 {
		timeout = transport.DefaultListTimeout
	}
	lctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tools, err := opts.Transport.ListTools(lctx, opts.Server)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] server %s unreachable: %v\n", opts.Server, err)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] server %s reachable (%d tools)\n", opts.Server, len(tools))

	if opts.Toolset == nil {
		return 0
	}

	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}
	d := opts.Toolset.Diff(names)

	failures := 0
	if len(d.Missing) > 0 {
		fmt.Fprintf(w, "  [FAIL] %d declared tool(s) missing from server: %s\n",
			len(d.Missing), strings.Join(d.Missing, ", "))
		failures++
	}
	if len(d.Extra) > 0 {
		fmt.Fprintf(w, "  [WARN] server exposes %d undeclared tool(s): %s\n",
			len(d.Extra), strings.Join(d.Extra, ", "))
	}
	if d.Clean() {
		fmt.Fprintf(w, "  [ OK ] all %d declared tools available\n", len(opts.Toolset.Tools))
	}
	return failures
}
