package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	toolsCheck bool
	toolsJSON  bool
)

func init() {
	toolsCmd.Flags().BoolVar(&toolsCheck, "check", false, "Diff server tools against the declared toolset")
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Print the listing as JSON")
	rootCmd.AddCommand(toolsCmd)
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List tools advertised by the MCP server",
	Long: `Query the MCP server for its advertised tools.

With --check, the listing is diffed against the tools this CLI declares;
declared tools missing from the server make the command exit non-zero.`,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	tools, err := newTransport().ListTools(cmd.Context(), resolvedServer())
	if err != nil {
		return fmt.Errorf("listing tools: %w", err)
	}

	if toolsJSON {
		out, err := json.MarshalIndent(tools, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding tool listing: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tDESCRIPTION")
		for _, tl := range tools {
			desc := tl.Description
			if desc == "" {
				desc = "-"
			}
			fmt.Fprintf(w, "%s\t%s\n", tl.Name, desc)
		}
		w.Flush()
	}

	if !toolsCheck {
		return nil
	}

	ts, err := loadToolset()
	if err != nil {
		return fmt.Errorf("loading toolset: %w", err)
	}
	names := make([]string, 0, len(tools))
	for _, tl := range tools {
		names = append(names, tl.Name)
	}
	d := ts.Diff(names)

	if len(d.Extra) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nUndeclared tools on server: %s\n", strings.Join(d.Extra, ", "))
	}
	if len(d.Missing) > 0 {
		return fmt.Errorf("%d declared tool(s) missing from server: %s", len(d.Missing), strings.Join(d.Missing, ", "))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nAll %d declared tools available.\n", len(ts.Tools))
	return nil
}
