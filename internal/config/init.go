package config

import (
	"fmt"
	"io"
	"os"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/platform"
)

// Default content for config.yaml. The values mirror the built-in defaults
// so a fresh install behaves the same before and after editing the file.
const defaultConfigContent = `# supamcp configuration. Values here are overridden by SUPAMCP_* environment
# variables and by command-line flags.
server:
  name: supabase
cli:
  bin: manus-mcp-cli
  timeout: 30s
  list_timeout: 10s
logging:
  level: info
  # file: /path/to/supamcp.log
  # max_size: 10
  # max_files: 3
report:
  dir: .
# toolset:
#   path: /path/to/toolset.yaml
`

// InitDir creates ~/.supamcp/ and a default config.yaml inside it.
// It prints progress to w. Existing items are skipped with a message.
func InitDir(w io.Writer) error {
	if err := ensureDir(w, Dir(), platform.DirPermNormal); err != nil {
		return err
	}
	return ensureFile(w, FilePath(), defaultConfigContent, platform.FilePermNormal)
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path, content string, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
