package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-contractgen/internal/fileutil"
	"github.com/alnah/go-contractgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength    = 4096
	MaxProductLength = 50
	MaxTitleLength   = 200
	MaxFormatLength  = 50
	MaxEngineLength  = 30
	MaxEngines       = 10
	MaxDefaultLength = 2000
)

// Default settings values.
const (
	DefaultOutputDir     = "output"
	DefaultProduct       = "kauntor"
	DefaultTemplatePath  = "templates/founding-partner-agreement.md"
	DefaultDocumentTitle = "Kauntor Partnership Agreement"
	DefaultHTMLFallback  = "styled"
)

// appDirName is the directory searched under the user config directory.
const appDirName = "contractgen"

// Config holds the generator settings. Contract field values are not
// settings: they come from the partner config file and flags.
type Config struct {
	Output   OutputConfig      `yaml:"output"`
	Template TemplateConfig    `yaml:"template"`
	Document DocumentConfig    `yaml:"document"`
	Dates    DatesConfig       `yaml:"dates"`
	HTML     HTMLConfig        `yaml:"html"`
	PDF      PDFConfig         `yaml:"pdf"`
	Assets   AssetsConfig      `yaml:"assets"`
	Defaults map[string]string `yaml:"defaults"` // Extra default field values
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir     string `yaml:"dir"`     // Output directory (default: "output")
	Product string `yaml:"product"` // File name prefix (default: "kauntor")
}

// TemplateConfig defines where the contract template is read from.
type TemplateConfig struct {
	Path string `yaml:"path"` // Relative to working directory
}

// DocumentConfig defines document metadata.
type DocumentConfig struct {
	Title string `yaml:"title"` // HTML <title> and PDF metadata
}

// DatesConfig defines how dates are displayed in the contract.
type DatesConfig struct {
	Format string `yaml:"format"` // Preset (long, iso, us, european) or tokens (default: long)
}

// HTMLConfig defines HTML stage behavior.
type HTMLConfig struct {
	Fallback string `yaml:"fallback"` // "styled" or "none" when pandoc fails
}

// PDFConfig defines the PDF engine chain.
type PDFConfig struct {
	Engines []string `yaml:"engines"` // Tried in order; empty = built-in chain
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Output:   OutputConfig{Dir: DefaultOutputDir, Product: DefaultProduct},
		Template: TemplateConfig{Path: DefaultTemplatePath},
		Document: DocumentConfig{Title: DefaultDocumentTitle},
		HTML:     HTMLConfig{Fallback: DefaultHTMLFallback},
	}
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.product", c.Output.Product, MaxProductLength); err != nil {
		return err
	}
	if err := validateFieldLength("template.path", c.Template.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("dates.format", c.Dates.Format, MaxFormatLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	switch strings.ToLower(c.HTML.Fallback) {
	case "", "styled", "none":
	default:
		return fmt.Errorf("%w: html.fallback %q (must be styled or none)", ErrInvalidValue, c.HTML.Fallback)
	}

	if len(c.PDF.Engines) > MaxEngines {
		return fmt.Errorf("%w: pdf.engines has %d entries (max %d)", ErrInvalidValue, len(c.PDF.Engines), MaxEngines)
	}
	for i, name := range c.PDF.Engines {
		if err := validateFieldLength(fmt.Sprintf("pdf.engines[%d]", i), name, MaxEngineLength); err != nil {
			return err
		}
	}

	for _, key := range c.DefaultKeys() {
		if err := validateFieldLength("defaults."+key, c.Defaults[key], MaxDefaultLength); err != nil {
			return err
		}
	}

	return nil
}

// DefaultKeys returns the keys of Defaults in sorted order so the
// resulting field order does not depend on map iteration.
func (c *Config) DefaultKeys() []string {
	keys := make([]string, 0, len(c.Defaults))
	for k := range c.Defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads settings from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
