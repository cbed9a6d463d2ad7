// Package schema declares the typed shape of every configuration domain
// served by the loader: the platform-wide main configuration, the tradable
// asset catalog, and the named strategy, risk-profile, and agent documents.
//
// Each domain has three pieces that the loader drives in order:
//
//   - a struct tree with yaml tags that a merged document binds onto
//   - an ApplyDefaults function filling zero-valued scalar fields
//   - a Validate function returning every constraint violation as a
//     FieldError, so callers see all problems in one pass
//
// Unknown keys in a document are tolerated by design: documents written for
// a newer schema still bind against an older binary.
package schema
