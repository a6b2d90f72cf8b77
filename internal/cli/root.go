package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/config"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/env"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/logging"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/supabase"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/toolset"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/transport"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagServer  string
	flagCLIBin  string
	flagTimeout time.Duration
	flagConfig  string
	flagToolset string
	flagVerbose bool
)

// logger is installed by the root PersistentPreRunE; commands running
// before that (help, completion) get a no-op logger.
var logger *slog.Logger = logging.Nop()

var rootCmd = &cobra.Command{
	Use:   "supamcp",
	Short: "Supabase management through the MCP CLI bridge",
	Long: `supamcp drives a Supabase MCP server through the manus-mcp-cli bridge.

It exposes the server's management tools (projects, database inspection,
advisors, edge functions, branches, docs search) as typed subcommands,
plus raw dispatch, connectivity checks, and a guided capability demo.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagConfig != "" {
			config.LoadFile(flagConfig)
		} else {
			config.Load()
		}

		opts := logging.Options{
			Level:    config.LogLevel(),
			File:     config.LogFile(),
			MaxSize:  config.LogMaxSize(),
			MaxFiles: config.LogMaxFiles(),
		}
		if flagVerbose {
			opts.Level = "debug"
			opts.Mirror = cmd.ErrOrStderr()
		}
		l, err := logging.New(opts)
		if err != nil {
			// A broken log destination must not block tool calls.
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; continuing without file logging\n", err)
			l = logging.Nop()
		}
		logger = l
		slog.SetDefault(logger)

		env.Load(logger)

		// Commands that talk to the server get a one-line heads-up when
		// the access token is missing. The server still answers listings
		// and docs search, so this is not fatal.
		switch cmd.Name() {
		case "call", "tools", "demo", "check", "docs":
			if !env.HasToken() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s not set; most tools will fail with auth errors.\n", env.TokenVar)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "MCP server name (default from config, else \"supabase\")")
	rootCmd.PersistentFlags().StringVar(&flagCLIBin, "cli-bin", "", "MCP CLI binary (default from config, else \"manus-mcp-cli\")")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "Per-call timeout (default from config, else 30s)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.supamcp/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagToolset, "toolset", "", "Toolset manifest file (default embedded catalog)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging, mirrored to stderr")
}

// resolvedServer returns the --server flag or the configured default.
func resolvedServer() string {
	if flagServer != "" {
		return flagServer
	}
	return config.ServerName()
}

// resolvedBin returns the --cli-bin flag or the configured default.
func resolvedBin() string {
	if flagCLIBin != "" {
		return flagCLIBin
	}
	return config.CLIBin()
}

// resolvedTimeout returns the --timeout flag or the configured default.
func resolvedTimeout() time.Duration {
	if flagTimeout > 0 {
		return flagTimeout
	}
	return config.CallTimeout()
}

// loadToolset returns the manifest named by --toolset or config, falling
// back to the embedded catalog.
func loadToolset() (*toolset.Toolset, error) {
	path := flagToolset
	if path == "" {
		path = config.ToolsetPath()
	}
	if path == "" {
		return toolset.Default()
	}
	return toolset.Load(path)
}

// newTransport builds the CLI transport from flags and config.
func newTransport() *transport.CLITransport {
	return &transport.CLITransport{
		Bin:         resolvedBin(),
		CallTimeout: resolvedTimeout(),
		ListTimeout: config.ListTimeout(),
	}
}

// newClient builds a typed Supabase client over the CLI transport.
func newClient() *supabase.Client {
	return &supabase.Client{
		Transport: newTransport(),
		Server:    resolvedServer(),
		Logger:    logger,
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
