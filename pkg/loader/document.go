package loader

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// MaxDocumentSize is the largest configuration document the loader will
// read. Configuration files are small by nature; anything larger is
// assumed to be a mistake.
const MaxDocumentSize = 10 * 1024 * 1024 // 10MB

// readDocument reads and parses a single YAML document into a generic
// map, then substitutes environment placeholders in its string values.
// It returns the substituted tree and the number of unresolved
// placeholders left in it.
func readDocument(path string) (map[string]any, int, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, &LoadError{
				FilePath: path,
				Message:  "file not found",
				Cause:    err,
			}
		}
		if os.IsPermission(err) {
			return nil, 0, &LoadError{
				FilePath: path,
				Message:  "permission denied",
				Cause:    err,
			}
		}
		return nil, 0, &LoadError{
			FilePath: path,
			Message:  "failed to access file",
			Cause:    err,
		}
	}

	if !fileInfo.Mode().IsRegular() {
		return nil, 0, &LoadError{
			FilePath: path,
			Message:  "not a regular file",
		}
	}

	if fileInfo.Size() > MaxDocumentSize {
		return nil, 0, &LoadError{
			FilePath: path,
			Message:  fmt.Sprintf("file size %d bytes exceeds maximum %d bytes", fileInfo.Size(), MaxDocumentSize),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, &LoadError{
			FilePath: path,
			Message:  "failed to read file",
			Cause:    err,
		}
	}

	if !utf8.Valid(data) {
		return nil, 0, &LoadError{
			FilePath: path,
			Message:  "file contains invalid UTF-8 encoding",
		}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, 0, &ParseError{
			FilePath: path,
			Message:  "YAML parsing failed",
			Cause:    err,
		}
	}

	// An empty or comment-only file parses to nil; treat it as an empty
	// document rather than an error.
	if doc == nil {
		doc = map[string]any{}
	}

	// Substitution runs on the parsed tree so a variable's value can never
	// be re-read as YAML syntax.
	doc, unresolved := SubstituteEnv(doc)

	return doc, unresolved, nil
}
