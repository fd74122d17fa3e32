package assets

// Names of the assets shipped with the binary.
const (
	DefaultTemplateName = "founding-partner-agreement"
	DefaultStyleName    = "contract"
)

// AssetLoader defines the contract for loading templates and styles.
type AssetLoader interface {
	// LoadTemplate loads a Markdown contract template by name (without .md extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)
}
