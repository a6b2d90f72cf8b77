package env

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/config"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/platform"
)

// Default content for ~/.supamcp/.env. All lines are commented so nothing
// is loaded until the user fills in real values.
const defaultContent = `# Credentials loaded by supamcp before every command.
# Values already present in the process environment win over this file.

# Management API token for the Supabase MCP server.
# SUPABASE_ACCESS_TOKEN=sbp_xxxxxxxxxxxxxxxxxxxx
`

// EnsureDefaultFile creates ~/.supamcp/.env with a commented template if it
// does not exist yet, and reports what happened to w. The file is created
// with owner-only permissions. Returns the file path.
func EnsureDefaultFile(w io.Writer) (string, error) {
	if err := config.EnsureDir(); err != nil {
		return "", err
	}

	path := config.EnvFilePath()
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return path, nil
	}

	if err := os.WriteFile(path, []byte(defaultContent), platform.FilePermSecure); err != nil {
		return "", fmt.Errorf("creating env file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return path, nil
}

// OpenEditor opens the given file in the user's preferred editor.
// It checks $EDITOR and falls back to notepad on Windows or vi on Unix.
func OpenEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		if runtime.GOOS == "windows" {
			editor = "notepad"
		} else {
			editor = "vi"
		}
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor %s: %w", editor, err)
	}
	return nil
}
