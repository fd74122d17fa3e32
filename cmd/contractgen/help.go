package main

import (
	"fmt"
	"io"

	contractgen "github.com/alnah/go-contractgen"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: contractgen [contract-file.json|.yaml] [--field value]...")
	fmt.Fprintln(w, "       contractgen <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fill the partnership agreement template and write Markdown, HTML and PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor [--json]   Check which converters are installed")
	fmt.Fprintln(w, "  version           Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Required fields:")
	for _, field := range contractgen.RequiredFields {
		fmt.Fprintf(w, "  %s\n", contractgen.FlagName(field))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Optional fields:")
	fmt.Fprintln(w, "  --end-date <YYYY-MM-DD>     Default: start date plus one year")
	fmt.Fprintln(w, "  --is-minor                  Partner is a minor (adds guardian clauses)")
	fmt.Fprintln(w, "  --guardian-name <s>         Guardian signing for a minor")
	defaults := contractgen.DefaultFields()
	for _, key := range defaults.Keys() {
		fmt.Fprintf(w, "  %-27s Default: %s\n", contractgen.FlagName(key)+" <s>", defaults.Value(key))
	}
	fmt.Fprintln(w, "  Any other --kebab-case flag fills the matching {{UPPER_SNAKE_CASE}} placeholder.")
	fmt.Fprintln(w, "  --start-date accepts YYYY-MM-DD or \"today\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Control flags:")
	fs := newFlagSet(&controlFlags{})
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "  contractgen --partner-name \"Jane Doe\" --start-date 2025-01-15 --promo-code JANE25")
}

// printVersion prints the build version.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "contractgen %s\n", Version)
}
