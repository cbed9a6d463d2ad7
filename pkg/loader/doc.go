// Package loader resolves the platform's layered YAML configuration tree
// into validated, typed documents.
//
// A configuration directory looks like:
//
//	config/
//	  main.yaml                 platform configuration
//	  assets.yaml               tradable asset catalog
//	  environments/<env>.yaml   per-environment overrides for main.yaml
//	  strategies/<name>.yaml    trading strategies
//	  risk/<name>.yaml          risk profiles
//	  agents/<name>.yaml        AI agent definitions
//
// Resolution reads the raw document, expands ${VAR} and ${VAR:-default}
// environment placeholders, deep-merges the environment overlay on top of
// main.yaml, unwraps optional section keys on collection documents, binds
// the result to its schema struct, applies defaults, and validates. Every
// constraint violation in a document is reported at once.
//
// Resolved documents are cached per (domain, name); repeated lookups
// return the same instance until the entry is invalidated by ReloadAll,
// Invalidate, or a file change queued by the FileWatcher.
package loader
