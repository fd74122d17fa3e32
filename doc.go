// Package contractgen fills the Founding Partner Agreement template with
// partner-specific values and writes it as Markdown, HTML, and PDF.
//
// # Quick Start
//
// Resolve fields, then generate:
//
//	fields, _, err := contractgen.ResolveFields(contractgen.DefaultFields(), os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen, err := contractgen.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(ctx, fields)
//	if err != nil {
//	    log.Fatal(err) // missing field, bad date, or Markdown not written
//	}
//	fmt.Println(result.MarkdownPath, result.HTMLPath, result.PDFPath)
//
// # Fields
//
// Fields merge three sources, later ones winning per key:
//
//  1. Built-in defaults (DefaultFields)
//  2. An optional flat JSON or YAML contract file
//  3. Command-line pairs such as --partner-name "Jane Doe"
//
// PARTNER_NAME, START_DATE and PROMO_CODE are required. START_DATE is a
// calendar date (YYYY-MM-DD); END_DATE defaults to one year later.
//
// # Template
//
// The template is Markdown with {{FIELD}} placeholders and
// {{#IF_MINOR}}...{{/IF_MINOR}} / {{#IF_ADULT}}...{{/IF_ADULT}} regions,
// selected by IS_MINOR. Unknown placeholders are left as written.
//
// # Output
//
// Markdown is always written. HTML and PDF are best-effort:
//
//  1. HTML via pandoc, else an in-process styled page (WithHTMLFallback)
//  2. PDF via the first engine that succeeds: prince, wkhtmltopdf,
//     weasyprint, pandoc; optionally chrome (go-rod) and gofpdf
//
// Conversion failures never fail Generate; the Result reports which files exist.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := contractgen.New(
//	    contractgen.WithOutputDir("contracts"),
//	    contractgen.WithPDFEngines("weasyprint", "gofpdf"),
//	    contractgen.WithDateFormat("D MMMM YYYY"),
//	)
package contractgen
