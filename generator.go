package contractgen

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-contractgen/internal/dateutil"
)

// DefaultTemplatePath is where the contract template is looked up,
// relative to the working directory.
const DefaultTemplatePath = "templates/founding-partner-agreement.md"

// Generator fills the contract template and writes the output files.
type Generator struct {
	runner       CommandRunner
	now          func() time.Time
	outputDir    string
	product      string
	title        string
	htmlFallback string
	engineNames  []string
	engines      []PDFEngine
	dateFormat   string
	logger       zerolog.Logger
	loader       AssetLoader
	templatePath string
}

// Result describes the files one Generate call produced.
// Empty HTMLPath or PDFPath means that artifact was not made.
type Result struct {
	MarkdownPath string
	HTMLPath     string
	PDFPath      string
	HTMLEngine   string   // "pandoc" or "styled"
	PDFEngine    string   // Name of the engine that succeeded
	Unresolved   []string // Placeholders left in the rendered document
}

// New creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithOutputDir, WithPDFEngines).
// Returns ErrUnknownEngine or ErrInvalidOption for invalid settings.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		runner:       &ExecRunner{},
		now:          time.Now,
		outputDir:    DefaultOutputDir,
		product:      DefaultProduct,
		title:        DefaultDocumentTitle,
		htmlFallback: HTMLFallbackStyled,
		dateFormat:   dateutil.DefaultDisplayFormat,
		logger:       zerolog.Nop(),
		templatePath: DefaultTemplatePath,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.loader == nil {
		loader, err := NewAssetLoader("")
		if err != nil {
			return nil, err
		}
		g.loader = loader
	}

	g.htmlFallback = strings.ToLower(g.htmlFallback)
	switch g.htmlFallback {
	case "":
		g.htmlFallback = HTMLFallbackStyled
	case HTMLFallbackStyled, HTMLFallbackNone:
	default:
		return nil, fmt.Errorf("%w: html fallback %q (must be %s or %s)",
			ErrInvalidOption, g.htmlFallback, HTMLFallbackStyled, HTMLFallbackNone)
	}

	if g.dateFormat == "" {
		g.dateFormat = dateutil.DefaultDisplayFormat
	}
	if _, err := dateutil.Format(time.Time{}, g.dateFormat); err != nil {
		return nil, fmt.Errorf("%w: date format: %v", ErrInvalidOption, err)
	}

	if g.outputDir == "" {
		g.outputDir = DefaultOutputDir
	}
	if g.title == "" {
		g.title = DefaultDocumentTitle
	}

	engines, err := NewPDFEngines(g.engineNames, g.runner)
	if err != nil {
		return nil, err
	}
	g.engines = engines

	return g, nil
}

// Generate validates fields, renders the contract and writes it to the
// output directory. Validation and date errors are returned before any file
// is written. HTML and PDF failures are not errors: the result simply lacks
// those paths.
// The context is used for cancellation of external converters.
func (g *Generator) Generate(ctx context.Context, fields *Fields) (*Result, error) {
	if err := ValidateFields(fields); err != nil {
		return nil, err
	}

	now := g.now()
	dates, err := ParseContractDates(fields, now)
	if err != nil {
		return nil, err
	}
	resolved, err := ApplyDates(fields, dates, g.dateFormat)
	if err != nil {
		return nil, err
	}
	template, err := g.loadTemplate()
	if err != nil {
		return nil, err
	}

	doc := Render(template, resolved)
	unresolved := Unresolved(doc)
	if len(unresolved) > 0 {
		g.logger.Warn().Strs("placeholders", unresolved).Msg("template placeholders left unfilled")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := OutputName(g.product, fields.Value(FieldPartnerName), now)
	result, err := g.emit(ctx, doc, ArtifactPaths(g.outputDir, name))
	if result != nil {
		result.Unresolved = unresolved
	}
	return result, err
}

// Engines returns the names of the configured PDF engines, in order.
func (g *Generator) Engines() []string {
	names := make([]string, len(g.engines))
	for i, e := range g.engines {
		names[i] = e.Name()
	}
	return names
}

// Requirements lists what to install for PDF generation to succeed.
func (g *Generator) Requirements() []string {
	return Requirements(g.engines)
}

// loadTemplate reads the on-disk template. A missing file at the default
// location falls back to the template shipped with the loader.
func (g *Generator) loadTemplate() (string, error) {
	if g.templatePath != "" {
		data, err := os.ReadFile(g.templatePath) // #nosec G304 -- template path is user-provided
		switch {
		case err == nil:
			if len(data) == 0 {
				return "", fmt.Errorf("%w: %s", ErrEmptyTemplate, g.templatePath)
			}
			g.logger.Debug().Str("path", g.templatePath).Msg("template loaded from disk")
			return string(data), nil
		case !os.IsNotExist(err):
			return "", fmt.Errorf("reading template: %w", err)
		case g.templatePath != DefaultTemplatePath:
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, g.templatePath)
		}
	}

	g.logger.Debug().Str("name", DefaultTemplateName).Msg("using built-in template")
	template, err := g.loader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		return "", err
	}
	if template == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyTemplate, DefaultTemplateName)
	}
	return template, nil
}

// loadStyle returns the stylesheet for the styled HTML fallback.
func (g *Generator) loadStyle() (string, error) {
	return g.loader.LoadStyle(DefaultStyleName)
}
