// Callisto is the configuration service for the Selam trading platform.
//
// It resolves the platform's layered YAML configuration tree (main
// document, per-environment overrides, asset catalog, strategies, risk
// profiles, and agent definitions) into validated documents, and serves
// them to the rest of the platform over HTTP.
//
// Usage:
//
//	# Describe the configuration tree
//	callisto info --config-dir ./config
//
//	# List documents in a domain
//	callisto list strategies
//
//	# Show a resolved document
//	callisto show risk conservative --environment production
//
//	# Validate every document
//	callisto validate
//
//	# Serve the configuration API with hot reload
//	callisto serve --watch
package main

func main() {
	Execute()
}
