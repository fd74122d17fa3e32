package contractgen

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Generator.
type Option func(*Generator)

// WithRunner sets the runner used for external converters.
// Tests inject a mock to avoid spawning processes.
func WithRunner(r CommandRunner) Option {
	return func(g *Generator) {
		g.runner = r
	}
}

// WithClock sets the time source used for "today" and output file names.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithOutputDir sets the directory receiving generated files.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// WithProduct sets the product slug prefixing output file names.
func WithProduct(product string) Option {
	return func(g *Generator) {
		g.product = product
	}
}

// WithDocumentTitle sets the HTML title and PDF metadata title.
func WithDocumentTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithHTMLFallback selects what happens when pandoc cannot produce HTML:
// HTMLFallbackStyled renders in-process, HTMLFallbackNone gives up.
func WithHTMLFallback(variant string) Option {
	return func(g *Generator) {
		g.htmlFallback = variant
	}
}

// WithPDFEngines sets the PDF engine chain by name, tried in order.
func WithPDFEngines(names ...string) Option {
	return func(g *Generator) {
		g.engineNames = append([]string(nil), names...)
	}
}

// WithDateFormat sets the display format of contract dates: a preset
// (long, iso, us, european) or a token format such as "D MMMM YYYY".
func WithDateFormat(format string) Option {
	return func(g *Generator) {
		g.dateFormat = format
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithTemplateLoader sets the loader for the built-in template and style.
func WithTemplateLoader(l AssetLoader) Option {
	return func(g *Generator) {
		g.loader = l
	}
}

// WithTemplatePath sets the on-disk template. When the path is
// DefaultTemplatePath and the file does not exist, the template from the
// loader is used instead.
func WithTemplatePath(path string) Option {
	return func(g *Generator) {
		g.templatePath = path
	}
}
