package contractgen

import "errors"

// Sentinel errors for library operations.
var (
	// Field validation errors. Any of these stops the run before a file is written.
	ErrMissingField   = errors.New("missing required field")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrInvalidDate    = errors.New("invalid date")
	ErrEndBeforeStart = errors.New("end date is before start date")

	// Contract file errors.
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileParse    = errors.New("failed to parse config file")

	// Template errors.
	ErrTemplateNotFound = errors.New("template not found")
	ErrEmptyTemplate    = errors.New("template cannot be empty")

	// Output errors.
	ErrOutputDir     = errors.New("failed to create output directory")
	ErrWriteMarkdown = errors.New("failed to write markdown")

	// Conversion errors. These are soft: the run still succeeds.
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrNoHTMLInput    = errors.New("no HTML file to convert")
	ErrUnknownEngine  = errors.New("unknown PDF engine")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageLoad       = errors.New("failed to load page")

	// Generator option errors.
	ErrInvalidOption = errors.New("invalid generator option")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
