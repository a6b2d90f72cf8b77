package env

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/config"
)

// TokenVar is the environment variable the Supabase MCP server reads its
// management API token from. Absence degrades most tools to auth errors,
// so the CLI warns about it at startup instead of failing.
const TokenVar = "SUPABASE_ACCESS_TOKEN"

// Entry represents a single key-value pair from a .env file.
type Entry struct {
	Key   string
	Value string
}

// Files returns the dotenv paths consulted at startup, in load order:
// the working directory's .env, then the user-level ~/.supamcp/.env.
func Files() []string {
	return []string{".env", config.EnvFilePath()}
}

// Load reads the given dotenv files into the process environment.
// Variables already set in the environment win over file values, and
// missing files are skipped. With no arguments it loads Files().
// Returns the paths that were actually loaded.
func Load(logger *slog.Logger, paths ...string) []string {
	if len(paths) == 0 {
		paths = Files()
	}

	var loaded []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logger.Warn("skipping unreadable env file", "path", path, "error", err)
			continue
		}
		logger.Debug("loaded env file", "path", path)
		loaded = append(loaded, path)
	}
	return loaded
}

// HasToken reports whether the Supabase access token is present in the
// environment.
func HasToken() bool {
	return os.Getenv(TokenVar) != ""
}

// ParseFile reads a .env file and returns key-value entries.
// It skips blank lines and lines starting with #.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		entries = append(entries, Entry{
			Key:   strings.TrimSpace(key),
			Value: strings.Trim(strings.TrimSpace(value), `"'`),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return entries, nil
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// RedactValue returns a redacted version of value if the key name contains
// a sensitive pattern (case-insensitive substring match).
// Values with 4+ chars show the first 4 chars + "***".
// Values with fewer than 4 chars are fully redacted as "***".
func RedactValue(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if len(value) >= 4 {
				return value[:4] + "***"
			}
			return "***"
		}
	}
	return value
}
