package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/config"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/env"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the supamcp config directory and starter files",
	Long: `Create ~/.supamcp/ with a default config.yaml and a .env credential
template. Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Initializing %s\n", config.Dir())

		if err := config.InitDir(out); err != nil {
			return fmt.Errorf("initializing config directory: %w", err)
		}
		if _, err := env.EnsureDefaultFile(out); err != nil {
			return fmt.Errorf("creating env template: %w", err)
		}

		fmt.Fprintf(out, "\nDone. Set %s in %s, then run 'supamcp doctor'.\n",
			env.TokenVar, config.EnvFilePath())
		return nil
	},
}
