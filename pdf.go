package contractgen

import (
	"context"
	"fmt"
	"strings"
)

// PDF engine names accepted in settings.
const (
	EnginePrince      = "prince"
	EngineWkhtmltopdf = "wkhtmltopdf"
	EngineWeasyprint  = "weasyprint"
	EnginePandoc      = "pandoc"
	EngineChrome      = "chrome"
	EngineGofpdf      = "gofpdf"
)

// DefaultPDFEngines is the built-in chain, highest quality first.
var DefaultPDFEngines = []string{EnginePrince, EngineWkhtmltopdf, EngineWeasyprint, EnginePandoc}

// PDFJob names the files a PDF engine reads and writes.
type PDFJob struct {
	MarkdownPath string
	HTMLPath     string // Empty when HTML conversion failed
	PDFPath      string
	Markdown     string // Rendered document, for in-process engines
	Title        string
}

// PDFEngine produces a PDF file from a rendered contract.
type PDFEngine interface {
	// Name identifies the engine in settings and logs.
	Name() string
	// NeedsHTML reports whether the engine reads the HTML file.
	NeedsHTML() bool
	// Requirement names what must be installed for the engine to work.
	Requirement() string
	// Render writes job.PDFPath.
	Render(ctx context.Context, job PDFJob) error
}

// commandEngine runs an external converter.
type commandEngine struct {
	name        string
	tool        string
	needsHTML   bool
	requirement string
	args        func(job PDFJob) []string
	runner      CommandRunner
}

// Compile-time interface check.
var _ PDFEngine = (*commandEngine)(nil)

func (e *commandEngine) Name() string        { return e.name }
func (e *commandEngine) NeedsHTML() bool     { return e.needsHTML }
func (e *commandEngine) Requirement() string { return e.requirement }

func (e *commandEngine) Render(ctx context.Context, job PDFJob) error {
	_, stderr, err := e.runner.Run(ctx, e.tool, e.args(job)...)
	if err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrPDFGeneration, e.name, err, stderrSuffix(stderr))
	}
	return nil
}

func newPrinceEngine(runner CommandRunner) *commandEngine {
	return &commandEngine{
		name: EnginePrince, tool: "prince", needsHTML: true, requirement: "prince", runner: runner,
		args: func(j PDFJob) []string { return []string{j.HTMLPath, "-o", j.PDFPath} },
	}
}

func newWkhtmltopdfEngine(runner CommandRunner) *commandEngine {
	return &commandEngine{
		name: EngineWkhtmltopdf, tool: "wkhtmltopdf", needsHTML: true, requirement: "wkhtmltopdf", runner: runner,
		args: func(j PDFJob) []string {
			return []string{"--enable-local-file-access", j.HTMLPath, j.PDFPath}
		},
	}
}

func newWeasyprintEngine(runner CommandRunner) *commandEngine {
	return &commandEngine{
		name: EngineWeasyprint, tool: "weasyprint", needsHTML: true, requirement: "weasyprint", runner: runner,
		args: func(j PDFJob) []string { return []string{j.HTMLPath, j.PDFPath} },
	}
}

// newPandocPDFEngine reads the Markdown directly; pandoc delegates to pdflatex.
func newPandocPDFEngine(runner CommandRunner) *commandEngine {
	return &commandEngine{
		name: EnginePandoc, tool: "pandoc", needsHTML: false, requirement: "pdflatex", runner: runner,
		args: func(j PDFJob) []string {
			return []string{j.MarkdownPath, "-o", j.PDFPath, "-V", "geometry:margin=1in"}
		},
	}
}

// NewPDFEngine returns the engine registered under name (case-insensitive).
// External engines run through runner.
func NewPDFEngine(name string, runner CommandRunner) (PDFEngine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case EnginePrince:
		return newPrinceEngine(runner), nil
	case EngineWkhtmltopdf:
		return newWkhtmltopdfEngine(runner), nil
	case EngineWeasyprint:
		return newWeasyprintEngine(runner), nil
	case EnginePandoc:
		return newPandocPDFEngine(runner), nil
	case EngineChrome:
		return newChromeEngine(defaultChromeTimeout), nil
	case EngineGofpdf:
		return newGofpdfEngine(), nil
	default:
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownEngine, name, strings.Join(KnownPDFEngines(), ", "))
	}
}

// NewPDFEngines builds a chain from names, in order. Empty names select DefaultPDFEngines.
func NewPDFEngines(names []string, runner CommandRunner) ([]PDFEngine, error) {
	if len(names) == 0 {
		names = DefaultPDFEngines
	}
	engines := make([]PDFEngine, 0, len(names))
	for _, n := range names {
		e, err := NewPDFEngine(n, runner)
		if err != nil {
			return nil, err
		}
		engines = append(engines, e)
	}
	return engines, nil
}

// KnownPDFEngines lists every engine name NewPDFEngine accepts.
func KnownPDFEngines() []string {
	return []string{EnginePrince, EngineWkhtmltopdf, EngineWeasyprint, EnginePandoc, EngineChrome, EngineGofpdf}
}

// Requirements lists what to install for any engine of the chain to succeed.
func Requirements(engines []PDFEngine) []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range engines {
		r := e.Requirement()
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
