package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no escape needed",
			input:    "body { color: red; }",
			expected: "body { color: red; }",
		},
		{
			name:     "escapes style close",
			input:    "</style>",
			expected: `<\/style>`,
		},
		{
			name:     "multiple occurrences",
			input:    "</a></b>",
			expected: `<\/a><\/b>`,
		},
		{
			name:     "case variation STYLE",
			input:    "</STYLE>",
			expected: `<\/STYLE>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sanitizeCSS(tt.input)
			if got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	const css = "body { color: red; }"
	const block = "<style>\n" + css + "</style>\n"

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "empty CSS returns HTML unchanged",
			html:     "<html><head></head><body>Hello</body></html>",
			css:      "",
			expected: "<html><head></head><body>Hello</body></html>",
		},
		{
			name:     "injects before </head>",
			html:     "<html><head></head><body>Hello</body></html>",
			css:      css,
			expected: "<html><head>" + block + "</head><body>Hello</body></html>",
		},
		{
			name:     "injects before </HEAD> mixed case",
			html:     "<html><HEAD></HEAD><body>Hello</body></html>",
			css:      css,
			expected: "<html><HEAD>" + block + "</HEAD><body>Hello</body></html>",
		},
		{
			name:     "injects after <body> with attributes",
			html:     `<html><body class="contract">Hello</body></html>`,
			css:      css,
			expected: `<html><body class="contract">` + block + `Hello</body></html>`,
		},
		{
			name:     "prepends to bare fragment",
			html:     "<p>Hello</p>",
			css:      css,
			expected: block + "<p>Hello</p>",
		},
		{
			name:     "sanitizes CSS with closing tags",
			html:     "<html><head></head><body>Hello</body></html>",
			css:      "</style><script>alert('x')</script>",
			expected: "<html><head><style>\n" + `<\/style><script>alert('x')<\/script>` + "</style>\n</head><body>Hello</body></html>",
		},
	}

	injector := &CSSInjection{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectCSS_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<html><head></head><body>Hello</body></html>"
	got := (&CSSInjection{}).InjectCSS(ctx, html, "body { color: red; }")
	if got != html {
		t.Errorf("InjectCSS() with cancelled context should return HTML unchanged, got %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkConverter - Markdown to standalone HTML
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name     string
		title    string
		markdown string
		contains []string
		excludes []string
	}{
		{
			name:     "heading and bold",
			title:    "Agreement",
			markdown: "# Founding Partner Agreement\n\nBetween **Jane Doe** and us.",
			contains: []string{
				"<!DOCTYPE html>",
				"<title>Agreement</title>",
				`<h1 id="founding-partner-agreement">Founding Partner Agreement</h1>`,
				"<strong>Jane Doe</strong>",
			},
		},
		{
			name:     "title is escaped",
			title:    `Smith & Sons <Partners>`,
			markdown: "text",
			contains: []string{"<title>Smith &amp; Sons &lt;Partners&gt;</title>"},
		},
		{
			name:     "raw HTML is not rendered",
			title:    "t",
			markdown: "Name: <script>alert(1)</script>",
			excludes: []string{"<script>alert(1)</script>"},
		},
		{
			name:     "GFM table",
			title:    "t",
			markdown: "| Term | Value |\n|---|---|\n| Share | 40% |\n",
			contains: []string{"<table>", "<td>40%</td>"},
		},
		{
			name:     "code highlighting uses inline styles",
			title:    "t",
			markdown: "```go\nfunc main() {}\n```\n",
			contains: []string{`style="`},
			excludes: []string{`class="chroma"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.title, tt.markdown)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\n%s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("output should not contain %q", bad)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "t", "# x")
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestStyledDocument(t *testing.T) {
	t.Parallel()

	got, err := StyledDocument(context.Background(), NewGoldmarkConverter(),
		"Kauntor Partnership Agreement", "# Title", "h1 { text-align: center; }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	styleIdx := strings.Index(got, "<style>")
	headEnd := strings.Index(got, "</head>")
	if styleIdx == -1 || headEnd == -1 || styleIdx > headEnd {
		t.Errorf("style block should be inside <head>:\n%s", got)
	}
	if !strings.Contains(got, "h1 { text-align: center; }") {
		t.Error("CSS content missing")
	}
}
