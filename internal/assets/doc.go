// Package assets provides the contract template and fallback HTML stylesheet.
//
// Assets are loaded from files embedded in the binary or from a directory
// on disk with the same layout:
//
//	assets/
//	├── styles/
//	│   └── contract.css
//	└── templates/
//	    └── founding-partner-agreement.md
package assets
