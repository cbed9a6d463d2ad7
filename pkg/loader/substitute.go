package loader

import (
	"os"
	"regexp"
	"strconv"
)

// envPattern matches ${VAR} and ${VAR:-default} placeholders. Variable
// names follow shell identifier rules; defaults may hold anything except
// a closing brace.
var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// SubstituteEnv expands environment variable placeholders in every string
// value of a parsed document tree. ${VAR} becomes the value of VAR;
// ${VAR:-default} falls back to the literal default when VAR is unset. A
// variable set to the empty string counts as set and substitutes the
// empty string. A ${VAR} placeholder with no default and no value is left
// in place unchanged, and the returned count records how many such
// placeholders remained. Substitution touches string values only, never
// keys, and is a single pass; values containing placeholder syntax are
// not expanded again. A value that consisted solely of one placeholder is
// coerced to a boolean or number when it reads as one, so numeric fields
// bind the way an inline literal would. The input tree is not mutated.
func SubstituteEnv(doc map[string]any) (map[string]any, int) {
	out, unresolved := substituteValue(doc)
	return out.(map[string]any), unresolved
}

// substituteValue walks one node of the tree.
func substituteValue(v any) (any, int) {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		unresolved := 0
		for key, child := range node {
			sub, n := substituteValue(child)
			out[key] = sub
			unresolved += n
		}
		return out, unresolved
	case []any:
		out := make([]any, len(node))
		unresolved := 0
		for i, child := range node {
			sub, n := substituteValue(child)
			out[i] = sub
			unresolved += n
		}
		return out, unresolved
	case string:
		return substituteString(node)
	default:
		return v, 0
	}
}

// substituteString expands the placeholders in one string value.
func substituteString(s string) (any, int) {
	unresolved := 0
	replaced := false
	out := envPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		name := groups[1]
		hasDefault := groups[2] != ""

		if value, ok := os.LookupEnv(name); ok {
			replaced = true
			return value
		}
		if hasDefault {
			replaced = true
			return groups[3]
		}
		unresolved++
		return match
	})

	// A value that was exactly one placeholder keeps its natural scalar
	// type, the way the same literal would have parsed inline. Anything
	// that is not a plain scalar stays an opaque string.
	if replaced && wholePlaceholder(s) {
		return coerceScalar(out), unresolved
	}
	return out, unresolved
}

// wholePlaceholder reports whether s is a single placeholder and nothing
// else.
func wholePlaceholder(s string) bool {
	loc := envPattern.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// coerceScalar interprets a substituted value as a boolean or number
// where it reads as one.
func coerceScalar(s string) any {
	switch s {
	case "true", "True":
		return true
	case "false", "False":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
