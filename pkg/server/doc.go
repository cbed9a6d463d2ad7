// Package server exposes the configuration service over HTTP: resolved
// documents, catalog listings, cache reload, tree-wide validation, health,
// and metrics endpoints, with graceful shutdown on signals.
package server
