package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/config"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/doctor"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the MCP bridge",
	Long: `Run diagnostic checks on the local setup: the bridge binary and its
version, the access token, and a live round-trip to the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := loadToolset()
		if err != nil {
			return fmt.Errorf("loading toolset: %w", err)
		}

		failures := doctor.Run(cmd.Context(), cmd.OutOrStdout(), doctor.Options{
			Bin:         resolvedBin(),
			Server:      resolvedServer(),
			Toolset:     ts,
			Transport:   newTransport(),
			ListTimeout: config.ListTimeout(),
		})
		if failures > 0 {
			return fmt.Errorf("%d preflight check(s) failed", failures)
		}
		return nil
	},
}
