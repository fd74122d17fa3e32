package contractgen

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-contractgen/internal/fileutil"
	"github.com/alnah/go-contractgen/internal/pipeline"
)

// DefaultProduct prefixes output file names.
const DefaultProduct = "kauntor"

// DefaultOutputDir receives generated files, relative to the working directory.
const DefaultOutputDir = "output"

// SanitizeName lowercases s and replaces every run of bytes outside
// [a-z0-9] with a single hyphen. Leading and trailing hyphens are kept.
func SanitizeName(s string) string {
	lower := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lower))
	inRun := false
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte('-')
			inRun = true
		}
	}
	return b.String()
}

// OutputName builds "<product>-partnership-<sanitized name>-<UTC date>".
func OutputName(product, partnerName string, now time.Time) string {
	if product == "" {
		product = DefaultProduct
	}
	return fmt.Sprintf("%s-partnership-%s-%s",
		SanitizeName(product), SanitizeName(partnerName), now.UTC().Format(time.DateOnly))
}

// Artifacts holds the three output paths of one run.
type Artifacts struct {
	Markdown string
	HTML     string
	PDF      string
}

// ArtifactPaths derives the output paths for name inside dir.
func ArtifactPaths(dir, name string) Artifacts {
	base := filepath.Join(dir, name)
	return Artifacts{
		Markdown: base + ".md",
		HTML:     base + ".html",
		PDF:      base + ".pdf",
	}
}

// emit writes the Markdown, then makes a best-effort attempt at HTML and PDF.
// Only failures to write the Markdown are returned; conversion failures are
// logged and reflected as empty paths in the result.
func (g *Generator) emit(ctx context.Context, doc string, paths Artifacts) (*Result, error) {
	if err := fileutil.EnsureDir(filepath.Dir(paths.Markdown)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}
	if err := fileutil.WriteFile(paths.Markdown, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteMarkdown, err)
	}
	g.logger.Info().Str("path", paths.Markdown).Msg("markdown written")

	result := &Result{MarkdownPath: paths.Markdown}

	if engine, err := g.convertHTML(ctx, doc, paths); err == nil {
		result.HTMLPath = paths.HTML
		result.HTMLEngine = engine
	}
	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	job := PDFJob{
		MarkdownPath: paths.Markdown,
		HTMLPath:     result.HTMLPath,
		PDFPath:      paths.PDF,
		Markdown:     doc,
		Title:        g.title,
	}
	if engine, err := g.convertPDF(ctx, job); err == nil {
		result.PDFPath = paths.PDF
		result.PDFEngine = engine
	}
	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	return result, nil
}

// convertHTML tries pandoc, then the configured fallback.
// Returns the name of the converter that succeeded.
func (g *Generator) convertHTML(ctx context.Context, doc string, paths Artifacts) (string, error) {
	converters := []htmlConverter{&pandocHTML{runner: g.runner, title: g.title}}
	if g.htmlFallback == HTMLFallbackStyled {
		converters = append(converters, &styledHTML{
			conv:  pipeline.NewGoldmarkConverter(),
			title: g.title,
			css:   g.loadStyle,
			body:  doc,
		})
	}

	var errs []error
	for _, c := range converters {
		err := c.Convert(ctx, paths.Markdown, paths.HTML)
		if err == nil {
			g.logger.Info().Str("path", paths.HTML).Str("converter", c.Name()).Msg("html written")
			return c.Name(), nil
		}
		_ = fileutil.RemoveIfExists(paths.HTML)
		g.logger.Debug().Err(err).Str("converter", c.Name()).Msg("html conversion failed")
		errs = append(errs, err)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	err := errors.Join(errs...)
	g.logger.Warn().Err(err).Str("markdown", paths.Markdown).
		Msg("HTML generation failed; markdown file is available")
	return "", err
}

// convertPDF tries each engine in order; the first success wins.
// A failed attempt's partial output is removed.
func (g *Generator) convertPDF(ctx context.Context, job PDFJob) (string, error) {
	// A PDF left by an earlier run must not outlive a failed or skipped conversion.
	_ = fileutil.RemoveIfExists(job.PDFPath)

	var errs []error
	for _, engine := range g.engines {
		if engine.NeedsHTML() && job.HTMLPath == "" {
			g.logger.Debug().Str("engine", engine.Name()).Msg("skipped: no HTML file")
			errs = append(errs, fmt.Errorf("%w: %s", ErrNoHTMLInput, engine.Name()))
			continue
		}

		err := engine.Render(ctx, job)
		if err == nil {
			g.logger.Info().Str("path", job.PDFPath).Str("engine", engine.Name()).Msg("pdf written")
			return engine.Name(), nil
		}
		_ = fileutil.RemoveIfExists(job.PDFPath)
		g.logger.Debug().Err(err).Str("engine", engine.Name()).Msg("pdf engine failed")
		errs = append(errs, err)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	err := errors.Join(errs...)
	g.logger.Warn().
		Strs("requirements", Requirements(g.engines)).
		Msg("PDF generation failed")
	return "", fmt.Errorf("%w: %v", ErrPDFGeneration, err)
}
