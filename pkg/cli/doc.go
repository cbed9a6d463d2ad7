// Package cli provides shared helpers for command line tools: output
// formatting and command error types.
package cli
