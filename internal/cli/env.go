package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/env"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/platform"
)

var envShowNoRedact bool

func init() {
	envShowCmd.Flags().BoolVar(&envShowNoRedact, "no-redact", false, "Show values without redaction")

	envCmd.AddCommand(envListCmd)
	envCmd.AddCommand(envEditCmd)
	envCmd.AddCommand(envShowCmd)
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Inspect credential files and variables",
	Long:  `Inspect the .env files and environment variables the CLI loads credentials from.`,
}

var envListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show which .env files are consulted",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Env files (loaded in order, process environment wins):")
		for _, path := range env.Files() {
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(w, "  [ OK ] %s\n", path)
			} else {
				fmt.Fprintf(w, "  [MISS] %s\n", path)
			}
		}
		if env.HasToken() {
			fmt.Fprintf(w, "  [ OK ] %s is set\n", env.TokenVar)
		} else {
			fmt.Fprintf(w, "  [MISS] %s is not set\n", env.TokenVar)
		}
		return nil
	},
}

var envEditCmd = &cobra.Command{
	Use:   "edit [path]",
	Short: "Open an env file in your editor",
	Long: `Open a .env file in your preferred editor ($EDITOR, defaults to vi).

Without a path, ~/.supamcp/.env is opened and created from a template if
it does not exist yet.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			var err error
			path, err = env.EnsureDefaultFile(cmd.OutOrStdout())
			if err != nil {
				return err
			}
		}

		if err := env.OpenEditor(path); err != nil {
			return err
		}

		// Ensure secure permissions after editing.
		platform.Chmod(path, platform.FilePermSecure)

		return nil
	},
}

var envShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print env file contents (redacted by default)",
	Long: `Print the contents of a .env file with sensitive values redacted.
Without a path, the first existing env file is shown (./.env, then
~/.supamcp/.env).

Use --no-redact to show actual values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			for _, candidate := range env.Files() {
				if _, err := os.Stat(candidate); err == nil {
					path = candidate
					break
				}
			}
			if path == "" {
				return fmt.Errorf("no env file found (looked for %s)", strings.Join(env.Files(), ", "))
			}
		}

		entries, err := env.ParseFile(path)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "(empty)")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
		for _, e := range entries {
			value := e.Value
			if !envShowNoRedact {
				value = env.RedactValue(e.Key, e.Value)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", e.Key, value)
		}
		return nil
	},
}
