package assets

import "errors"

// Lookup failures for contract templates and HTML styles. Wrapped errors
// carry the requested name; match them with errors.Is.
var (
	ErrTemplateNotFound = errors.New("contract template not found")
	ErrStyleNotFound    = errors.New("contract style not found")

	// ErrInvalidAssetName rejects names that could escape the template
	// directory: path separators, dots and control characters.
	ErrInvalidAssetName = errors.New("invalid template or style name")

	// ErrInvalidBasePath means the override directory is missing or not a directory.
	ErrInvalidBasePath = errors.New("invalid asset directory")

	ErrAssetRead     = errors.New("cannot read template or style file")
	ErrPathTraversal = errors.New("asset path outside the asset directory")
)
