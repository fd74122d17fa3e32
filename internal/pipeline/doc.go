// Package pipeline renders a contract's Markdown into a standalone, styled
// HTML page without external tools.
//
// It backs the "styled" HTML fallback used when pandoc is missing or fails:
//   - Markdown to HTML conversion via Goldmark (GFM tables, inline-styled code)
//   - CSS injection into the document head
//
// PDF generation lives in the root contractgen package, which may feed the
// resulting HTML file to an HTML-based PDF engine.
package pipeline
