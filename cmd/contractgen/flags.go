package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid control flags.
var ErrUsage = errors.New("invalid usage")

// controlFlags configure the tool itself. Every other --flag is a contract field.
type controlFlags struct {
	settings  string
	outputDir string
	template  string
	logLevel  string
	verbose   bool
	quiet     bool
	help      bool
}

// newFlagSet declares the control flags on a fresh FlagSet.
func newFlagSet(f *controlFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("contractgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVar(&f.settings, "settings", "", "settings file name or path")
	fs.StringVar(&f.outputDir, "output-dir", "", "directory for generated files")
	fs.StringVar(&f.template, "template", "", "contract template path")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&f.help, "help", "h", false, "show usage")
	return fs
}

// parseControlFlags separates control flags from contract field tokens.
// Tokens naming a declared flag (long or shorthand, with or without "=value")
// go to pflag; all others are returned in their original order.
func parseControlFlags(args []string) (*controlFlags, []string, error) {
	f := &controlFlags{}
	fs := newFlagSet(f)

	control, rest, err := splitArgs(fs, args)
	if err != nil {
		return nil, nil, err
	}
	if err := fs.Parse(control); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if f.verbose && f.quiet {
		return nil, nil, fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", ErrUsage)
	}
	return f, rest, nil
}

// splitArgs walks args once and sorts each token into control or rest.
// A field flag keeps its value slot: the token after it belongs to the
// field unless it starts with "--", so "--promo-code -q" sets PROMO_CODE.
// On error, control holds the tokens collected so far.
func splitArgs(fs *flag.FlagSet, args []string) (control, rest []string, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		def := lookupFlag(fs, arg)
		if def == nil {
			rest = append(rest, arg)
			if isFieldFlag(arg) && i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
				i++
				rest = append(rest, args[i])
			}
			continue
		}

		control = append(control, arg)
		if def.Value.Type() != "bool" && !strings.Contains(arg, "=") {
			if i+1 >= len(args) {
				return control, rest, fmt.Errorf("%w: flag %s needs a value", ErrUsage, arg)
			}
			i++
			control = append(control, args[i])
		}
	}
	return control, rest, nil
}

// isFieldFlag reports whether arg is a "--name" token that takes a value.
func isFieldFlag(arg string) bool {
	return strings.HasPrefix(arg, "--") && len(arg) > 2 && !strings.Contains(arg, "=")
}

// lookupFlag returns the control flag arg refers to, or nil.
func lookupFlag(fs *flag.FlagSet, arg string) *flag.Flag {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name, _, _ := strings.Cut(arg[2:], "=")
		return fs.Lookup(name)
	case strings.HasPrefix(arg, "-") && len(arg) == 2:
		return fs.ShorthandLookup(arg[1:])
	default:
		return nil
	}
}

// isHelp reports whether args only ask for usage.
// Only -h or --help in flag position counts, never a field's value.
func isHelp(args []string) bool {
	if len(args) == 0 {
		return true
	}
	control, _, _ := splitArgs(newFlagSet(&controlFlags{}), args)
	for _, a := range control {
		if a == "--help" || a == "-h" {
			return true
		}
	}
	return false
}
