// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-contractgen/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForMissingField returns a hint for a required field absent from flags and file.
// field is the UPPER_SNAKE_CASE key; flag is its --kebab-case form.
func ForMissingField(field, flag string) string {
	return format("pass " + flag + " <value> or add \"" + field + "\" to the config file")
}

// ForInvalidDate returns a hint about the accepted date syntax.
func ForInvalidDate() string {
	return format("use YYYY-MM-DD (e.g., 2025-01-15) or \"today\"")
}

// ForHTMLConversion returns a hint when pandoc could not produce HTML.
func ForHTMLConversion() string {
	return format("install pandoc for standalone HTML output")
}

// ForPDFEngines lists the tools that would make PDF generation succeed.
func ForPDFEngines(tools []string) string {
	if len(tools) == 0 {
		return ""
	}
	return format("to generate PDF, install one of: " + joinOr(tools))
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for settings file not found errors.
// Suggests --settings and creating a file in ~/.config/contractgen/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --settings /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/contractgen") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable, or pass --output-dir")
}

// joinOr renders ["a","b","c"] as "a, b, or c".
func joinOr(items []string) string {
	switch len(items) {
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
	}
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
