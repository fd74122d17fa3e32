package contractgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-contractgen/internal/fileutil"
	"github.com/alnah/go-contractgen/internal/pipeline"
)

// HTML fallback variants, used when pandoc cannot produce HTML.
const (
	HTMLFallbackStyled = "styled"
	HTMLFallbackNone   = "none"
)

// Names reported in Result.HTMLEngine.
const (
	htmlEnginePandoc = "pandoc"
	htmlEngineStyled = "styled"
)

// DefaultDocumentTitle is the HTML title used when none is configured.
const DefaultDocumentTitle = "Kauntor Partnership Agreement"

// htmlConverter turns the Markdown file into an HTML file.
type htmlConverter interface {
	Name() string
	Convert(ctx context.Context, mdPath, htmlPath string) error
}

// pandocHTML converts Markdown to standalone HTML by invoking the pandoc CLI.
type pandocHTML struct {
	runner CommandRunner
	title  string
}

func (p *pandocHTML) Name() string { return htmlEnginePandoc }

// Convert uses -f markdown-fancy_lists so lettered markers (A), B)) stay as
// written instead of becoming ordered lists.
func (p *pandocHTML) Convert(ctx context.Context, mdPath, htmlPath string) error {
	_, stderr, err := p.runner.Run(ctx, "pandoc", mdPath,
		"-f", "markdown-fancy_lists",
		"-o", htmlPath,
		"--standalone",
		"--embed-resources",
		"--metadata", "title="+p.title,
	)
	if err != nil {
		return fmt.Errorf("%w: pandoc: %v%s", ErrHTMLConversion, err, stderrSuffix(stderr))
	}
	return nil
}

// styledHTML renders Markdown in-process into a page with inline CSS.
type styledHTML struct {
	conv  pipeline.HTMLConverter
	title string
	css   func() (string, error)
	body  string
}

func (s *styledHTML) Name() string { return htmlEngineStyled }

func (s *styledHTML) Convert(ctx context.Context, _, htmlPath string) error {
	css, err := s.css()
	if err != nil {
		return fmt.Errorf("%w: loading style: %v", ErrHTMLConversion, err)
	}
	page, err := pipeline.StyledDocument(ctx, s.conv, s.title, s.body, css)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	if err := fileutil.WriteFile(htmlPath, page); err != nil {
		return fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return nil
}

// stderrSuffix formats captured stderr for an error message.
func stderrSuffix(stderr string) string {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return ""
	}
	const maxLen = 500
	if len(stderr) > maxLen {
		stderr = stderr[:maxLen] + "..."
	}
	return ": " + stderr
}
