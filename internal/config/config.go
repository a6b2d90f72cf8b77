package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/supabase"
	"github.com/ZoaGrad/supabase-mcp-integration-demo/internal/transport"
)

const (
	fileName = "config"
	fileType = "yaml"

	// homeDirName is the dot-directory under $HOME holding config,
	// credentials, and the default log file.
	homeDirName = ".supamcp"

	// envPrefix namespaces environment overrides, e.g.
	// SUPAMCP_SERVER_NAME=staging overrides server.name.
	envPrefix = "SUPAMCP"
)

// Keys recognized in config.yaml and via SUPAMCP_* environment overrides.
const (
	KeyServerName  = "server.name"
	KeyCLIBin      = "cli.bin"
	KeyCallTimeout = "cli.timeout"
	KeyListTimeout = "cli.list_timeout"
	KeyLogLevel    = "logging.level"
	KeyLogFile     = "logging.file"
	KeyLogMaxSize  = "logging.max_size"
	KeyLogMaxFiles = "logging.max_files"
	KeyReportDir   = "report.dir"
	KeyToolsetPath = "toolset.path"
)

// Dir returns the path to the config directory (~/.supamcp/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDirName)
	}
	return filepath.Join(home, homeDirName)
}

// FilePath returns the full path to the config file (~/.supamcp/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnvFilePath returns the path to the user-level dotenv file (~/.supamcp/.env).
func EnvFilePath() string {
	return filepath.Join(Dir(), ".env")
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	LoadFile(FilePath())
}

// LoadFile initializes Viper from an explicit config file path instead of
// the default location. SUPAMCP_* environment overrides still apply.
func LoadFile(path string) {
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(envPrefix)
	// Nested keys map to underscored env names: server.name -> SUPAMCP_SERVER_NAME.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ServerName returns the MCP server to address tool calls to.
func ServerName() string {
	if s := viper.GetString(KeyServerName); s != "" {
		return s
	}
	return supabase.DefaultServer
}

// CLIBin returns the MCP CLI binary to execute.
func CLIBin() string {
	if s := viper.GetString(KeyCLIBin); s != "" {
		return s
	}
	return transport.DefaultBin
}

// CallTimeout returns the per-tool-call deadline. Values are Go duration
// strings ("30s", "2m"); anything unset or unparseable falls back to the
// transport default.
func CallTimeout() time.Duration {
	if d := viper.GetDuration(KeyCallTimeout); d > 0 {
		return d
	}
	return transport.DefaultCallTimeout
}

// ListTimeout returns the deadline for tool discovery.
func ListTimeout() time.Duration {
	if d := viper.GetDuration(KeyListTimeout); d > 0 {
		return d
	}
	return transport.DefaultListTimeout
}

// LogLevel returns the configured log level name (debug, info, warn, error).
func LogLevel() string {
	if s := viper.GetString(KeyLogLevel); s != "" {
		return s
	}
	return "info"
}

// LogFile returns the log destination (~/.supamcp/supamcp.log by default).
func LogFile() string {
	if s := viper.GetString(KeyLogFile); s != "" {
		return s
	}
	return filepath.Join(Dir(), "supamcp.log")
}

// LogMaxSize returns the rotation threshold in megabytes.
func LogMaxSize() int {
	if n := viper.GetInt(KeyLogMaxSize); n > 0 {
		return n
	}
	return 10
}

// LogMaxFiles returns how many rotated log files to retain.
func LogMaxFiles() int {
	if n := viper.GetInt(KeyLogMaxFiles); n > 0 {
		return n
	}
	return 3
}

// ReportDir returns the directory where check and demo reports are written.
func ReportDir() string {
	if s := viper.GetString(KeyReportDir); s != "" {
		return s
	}
	return "."
}

// ToolsetPath returns an alternate toolset manifest path, or empty when the
// embedded catalog should be used.
func ToolsetPath() string {
	return viper.GetString(KeyToolsetPath)
}

// Reset clears all loaded configuration. Intended for tests.
func Reset() {
	viper.Reset()
}
