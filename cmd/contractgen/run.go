package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	contractgen "github.com/alnah/go-contractgen"
	"github.com/alnah/go-contractgen/internal/config"
	"github.com/alnah/go-contractgen/internal/hints"
)

// runGenerate resolves fields and settings from args, then writes the contract.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, rest, err := parseControlFlags(args)
	if err != nil {
		return err
	}

	var environ []string
	if env.Environ != nil {
		environ = env.Environ()
	}
	if err := applyEnvConfig(loadEnvConfig(environ), flags); err != nil {
		return err
	}

	logger, err := newLogger(env.Stderr, flags)
	if err != nil {
		return err
	}
	warnUnknownEnvVars(logger, environ)

	cfg, err := loadSettings(flags)
	if err != nil {
		return err
	}

	defaults := contractgen.DefaultFields()
	for _, key := range cfg.DefaultKeys() {
		defaults.Set(key, cfg.Defaults[key])
	}

	fields, ignored, err := contractgen.ResolveFields(defaults, rest)
	if err != nil {
		return withHint(err)
	}
	if len(ignored) > 0 {
		logger.Warn().Strs("args", ignored).Msg("ignoring arguments that are not --flag value pairs")
	}

	gen, err := newGenerator(cfg, env, logger)
	if err != nil {
		return err
	}

	result, err := gen.Generate(ctx, fields)
	if err != nil {
		return withHint(err)
	}

	reportResult(env.Stdout, logger, result, gen.Requirements())
	return nil
}

// loadSettings reads the settings file when --settings (or
// CONTRACTGEN_SETTINGS) is given, then applies the overrides on top of it.
func loadSettings(flags *controlFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.settings != "" {
		loaded, err := config.LoadConfig(flags.settings)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading settings: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(flags.settings)))
			}
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		cfg = loaded
	}

	if flags.outputDir != "" {
		cfg.Output.Dir = flags.outputDir
	}
	if flags.template != "" {
		cfg.Template.Path = flags.template
	}
	return cfg, nil
}

// newGenerator maps settings onto generator options.
func newGenerator(cfg *config.Config, env *Environment, logger zerolog.Logger) (*contractgen.Generator, error) {
	loader, err := contractgen.NewAssetLoader(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}

	opts := []contractgen.Option{
		contractgen.WithClock(env.Now),
		contractgen.WithOutputDir(cfg.Output.Dir),
		contractgen.WithProduct(cfg.Output.Product),
		contractgen.WithDocumentTitle(cfg.Document.Title),
		contractgen.WithHTMLFallback(cfg.HTML.Fallback),
		contractgen.WithPDFEngines(cfg.PDF.Engines...),
		contractgen.WithDateFormat(cfg.Dates.Format),
		contractgen.WithLogger(logger),
		contractgen.WithTemplateLoader(loader),
		contractgen.WithTemplatePath(cfg.Template.Path),
	}
	if env.Runner != nil {
		opts = append(opts, contractgen.WithRunner(env.Runner))
	}
	return contractgen.New(opts...)
}

// reportResult prints one line per written file and explains missing ones.
func reportResult(w io.Writer, logger zerolog.Logger, r *contractgen.Result, requirements []string) {
	fmt.Fprintf(w, "Generated: %s\n", r.MarkdownPath)
	if r.HTMLPath != "" {
		fmt.Fprintf(w, "Generated: %s\n", r.HTMLPath)
	}
	if r.PDFPath != "" {
		fmt.Fprintf(w, "Generated: %s\n", r.PDFPath)
	}

	if r.HTMLEngine != "" && r.HTMLEngine != "pandoc" {
		logger.Info().Msg("pandoc unavailable, wrote styled HTML instead" + hints.ForHTMLConversion())
	}
	if r.PDFPath == "" {
		logger.Warn().Msg("PDF not generated" + hints.ForPDFEngines(requirements))
	}
}

// withHint appends an actionable hint for errors the user can fix.
func withHint(err error) error {
	var fe *contractgen.FieldError
	switch {
	case errors.As(err, &fe) && errors.Is(err, contractgen.ErrMissingField):
		return fmt.Errorf("%w%s", err, hints.ForMissingField(fe.Field, contractgen.FlagName(fe.Field)))
	case errors.Is(err, contractgen.ErrInvalidDate):
		return fmt.Errorf("%w%s", err, hints.ForInvalidDate())
	case errors.Is(err, contractgen.ErrOutputDir):
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	default:
		return err
	}
}
