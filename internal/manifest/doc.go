// Package manifest loads checks manifests: ordered lists of selector
// expressions that a document is graded against.
//
// # Manifest Format
//
// A manifest is a JSON array of strings:
//
//	["h1", "h2", "#header a", "meta[name=viewport]"]
//
// Files with a .yaml or .yml extension may use the equivalent YAML sequence:
//
//	- h1
//	- h2
//	- "#header a"
//
// # Usage
//
//	loader := manifest.NewLoader(logger)
//	checks, err := loader.Load("checks.json")
//	if err != nil {
//	    return err
//	}
//
// The returned slice keeps file order. Sorting is left to the caller.
//
// # Error Handling
//
//   - ErrFileNotFound: manifest file does not exist
//   - ErrInvalidFormat: file is not a JSON (or YAML) array of strings
package manifest
