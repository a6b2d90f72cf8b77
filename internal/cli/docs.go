package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/supabase"
)

var docsLimit int

func init() {
	docsCmd.Flags().IntVar(&docsLimit, "limit", supabase.DefaultDocsLimit, "Maximum number of results")
	rootCmd.AddCommand(docsCmd)
}

var docsCmd = &cobra.Command{
	Use:   "docs <query>...",
	Short: "Search the Supabase documentation",
	Long: `Search the Supabase documentation via the server's GraphQL endpoint.

  supamcp docs row level security
  supamcp docs "edge functions" --limit 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		results, err := newClient().SearchDocs(cmd.Context(), query, docsLimit)
		if err != nil {
			return fmt.Errorf("searching docs: %w", err)
		}

		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results.")
			return nil
		}
		for i, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, r.Title)
			if r.Href != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", r.Href)
			}
		}
		return nil
	},
}
