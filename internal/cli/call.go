package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/toolset"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/transport"
)

var (
	callInputs []string
	callJSON   string
	callStrict bool
)

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Invoke one MCP tool and print the result",
	Long: `Dispatch a single tool call to the MCP server.

Parameters are provided as key=value pairs via --input flags, or as a JSON
object via --json. Pair values that parse as JSON are sent typed (numbers,
booleans), everything else is sent as a string.

  supamcp call list_projects
  supamcp call get_project --input id=abcdefghij
  supamcp call execute_sql -i project_id=abcdefghij -i query='SELECT 1'
  supamcp call get_logs --json '{"project_id": "abcdefghij", "service": "api"}'

Structured results are pretty-printed; plain-text results are printed
verbatim. A failed call prints the server's error and exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringArrayVarP(&callInputs, "input", "i", nil, "Parameter key=value pairs (can be specified multiple times)")
	callCmd.Flags().StringVar(&callJSON, "json", "", "Parameters as a JSON object (merged before --input pairs)")
	callCmd.Flags().BoolVar(&callStrict, "strict", false, "Reject parameters that fail the tool's declared schema")
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	tool := args[0]

	params, err := buildParams(callJSON, callInputs)
	if err != nil {
		return err
	}

	if callStrict {
		ts, err := loadToolset()
		if err != nil {
			return fmt.Errorf("loading toolset: %w", err)
		}
		result, err := toolset.NewInputValidator(ts).ValidateInput(tool, params)
		if err != nil {
			return fmt.Errorf("validating parameters for %s: %w", tool, err)
		}
		if !result.Valid {
			return fmt.Errorf("parameters for %s rejected: %s", tool, result.Summary())
		}
	}

	logger.Debug("dispatching tool call", "tool", tool, "server", resolvedServer())
	out := newTransport().Invoke(cmd.Context(), transport.ToolCall{
		Tool:   tool,
		Server: resolvedServer(),
		Params: params,
	})
	return printOutcome(cmd, out)
}

// buildParams merges a JSON object with key=value pairs; pairs win.
func buildParams(blob string, pairs []string) (map[string]any, error) {
	params := map[string]any{}
	if blob != "" {
		if err := json.Unmarshal([]byte(blob), &params); err != nil {
			return nil, fmt.Errorf("parsing --json: %w", err)
		}
	}

	kv, err := parseInputArgs(pairs)
	if err != nil {
		return nil, err
	}
	for k, v := range kv {
		params[k] = coerceValue(v)
	}

	if len(params) == 0 {
		return nil, nil
	}
	return params, nil
}

// parseInputArgs parses --input key=value flags into a map.
func parseInputArgs(inputs []string) (map[string]string, error) {
	result := make(map[string]string)
	for _, input := range inputs {
		parts := strings.SplitN(input, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid input format %q: expected key=value", input)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("invalid input format %q: key cannot be empty", input)
		}
		result[key] = value
	}
	return result, nil
}

// coerceValue sends values that parse as JSON typed, so --input limit=5
// reaches the server as a number and --input name=demo as a string.
func coerceValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}

// printOutcome renders one outcome: parsed payloads pretty-printed, raw
// text verbatim, failures as the command error.
func printOutcome(cmd *cobra.Command, out transport.Outcome) error {
	switch out.Kind {
	case transport.KindParsed:
		var buf bytes.Buffer
		if err := json.Indent(&buf, out.Payload, "", "  "); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), string(out.Payload))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), buf.String())
		return nil
	case transport.KindRaw:
		fmt.Fprint(cmd.OutOrStdout(), out.Text)
		if !strings.HasSuffix(out.Text, "\n") {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	default:
		return out.Err()
	}
}
