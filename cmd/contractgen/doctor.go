package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Tools    []toolInfo `json:"tools"`
	Chrome   toolInfo   `json:"chrome"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// toolInfo reports whether one converter is installed.
type toolInfo struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
	Role  string `json:"role"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	CI         bool   `json:"ci"`
	NoSandbox  string `json:"rod_no_sandbox"`
	BrowserBin string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// doctorTools are the external programs the default chains call.
var doctorTools = []struct{ name, role string }{
	{"pandoc", "html, pdf"},
	{"prince", "pdf"},
	{"wkhtmltopdf", "pdf"},
	{"weasyprint", "pdf"},
	{"pdflatex", "pdf (with pandoc)"},
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkTools(result, env)
	checkChrome(result, env)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkTools looks up every external converter on PATH.
func checkTools(result *doctorResult, env *Environment) {
	for _, tool := range doctorTools {
		info := toolInfo{Name: tool.name, Role: tool.role}
		if env.LookPath != nil {
			if path, err := env.LookPath(tool.name); err == nil {
				info.Found = true
				info.Path = path
			}
		}
		result.Tools = append(result.Tools, info)
	}

	byName := make(map[string]bool, len(result.Tools))
	for _, t := range result.Tools {
		byName[t.Name] = t.Found
	}
	if !byName["pandoc"] {
		result.Warnings = append(result.Warnings,
			"pandoc not found: HTML uses the built-in styled page and the pandoc PDF engine is unavailable")
	}
	pdfReady := byName["prince"] || byName["wkhtmltopdf"] || byName["weasyprint"] ||
		(byName["pandoc"] && byName["pdflatex"])
	if !pdfReady {
		result.Warnings = append(result.Warnings,
			"no PDF converter found: install prince, wkhtmltopdf, weasyprint, or pdflatex")
	}
}

// checkChrome detects Chrome/Chromium for the optional chrome engine.
func checkChrome(result *doctorResult, env *Environment) {
	result.Chrome = toolInfo{Name: "chrome", Role: "pdf (optional engine)"}

	path := result.Env.BrowserBin
	if path == "" && env.LookChrome != nil {
		path, _ = env.LookChrome()
	}
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Chrome not found at %s", path))
		return
	}
	result.Chrome.Found = true
	result.Chrome.Path = path

	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
	if result.Env.CI && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1 for the chrome engine")
	}
}

// checkSystem verifies the temp directory is writable.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "contractgen-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	_ = os.Remove(testFile)
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "contractgen doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Converters")
	for _, t := range append(r.Tools, r.Chrome) {
		if t.Found {
			fmt.Fprintf(w, "  [OK] %s (%s): %s\n", t.Name, t.Role, t.Path)
		} else {
			fmt.Fprintf(w, "  [--] %s (%s): not found\n", t.Name, t.Role)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate Markdown, HTML and PDF")
	case "warnings":
		fmt.Fprintln(w, "Status: Markdown will be generated; see warnings above")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
