// Package exports implements the subset of the Node.js package-exports
// resolution algorithm the resolution core needs: mapping a subpath
// against a package's "exports" field, driven with only the "default"
// condition enabled.
package exports

import "encoding/json"

// NotExportedError reports that a subpath has no match in a package's
// exports field under the conditions in use.
type NotExportedError struct {
	Subpath string
}

func (e *NotExportedError) Error() string {
	return "not exported: " + e.Subpath
}

// Resolve resolves subpath (e.g. "src/Foo.sol", no leading "./") against a
// package's raw "exports" field JSON, using only the "default" condition.
// It returns the resolved subpath (with any pattern substitution applied),
// or a *NotExportedError if nothing matches.
func Resolve(rawExports json.RawMessage, subpath string) (string, error) {
	var any interface{}
	if err := json.Unmarshal(rawExports, &any); err != nil {
		return "", err
	}

	target := "./" + subpath

	switch v := any.(type) {
	case string:
		// A package whose entire "exports" field is a single target only
		// exports its root; it has nothing to offer a deep subpath.
		if subpath == "" {
			return stripDotSlash(v), nil
		}
		return "", &NotExportedError{Subpath: subpath}

	case map[string]interface{}:
		if isConditionsObject(v) {
			// A top-level conditions object, like a single string target,
			// only exports the package root.
			if subpath != "" {
				return "", &NotExportedError{Subpath: subpath}
			}
			if resolved, ok := resolveConditions(v); ok {
				return stripDotSlash(resolved), nil
			}
			return "", &NotExportedError{Subpath: subpath}
		}

		// Exact match first.
		if raw, ok := v[target]; ok {
			if resolved, ok := resolveValue(raw); ok {
				return stripDotSlash(resolved), nil
			}
			return "", &NotExportedError{Subpath: subpath}
		}

		// Longest-matching pattern with a single "*".
		if resolved, ok := resolvePattern(v, target); ok {
			return stripDotSlash(resolved), nil
		}

		return "", &NotExportedError{Subpath: subpath}

	default:
		return "", &NotExportedError{Subpath: subpath}
	}
}

// isConditionsObject reports whether m is a conditions object (keys are
// condition names, e.g. "default", "import") rather than a subpath map
// (keys start with "." ).
func isConditionsObject(m map[string]interface{}) bool {
	for k := range m {
		if len(k) > 0 && k[0] == '.' {
			return false
		}
	}
	return true
}

func resolveConditions(m map[string]interface{}) (string, bool) {
	raw, ok := m["default"]
	if !ok {
		return "", false
	}
	return resolveValue(raw)
}

// resolveValue unwraps a string target, or a nested conditions object
// restricted to "default", or the first resolvable entry of an array
// fallback.
func resolveValue(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case map[string]interface{}:
		return resolveConditions(v)
	case []interface{}:
		for _, item := range v {
			if resolved, ok := resolveValue(item); ok {
				return resolved, true
			}
		}
		return "", false
	default:
		return "", false
	}
}

func resolvePattern(m map[string]interface{}, target string) (string, bool) {
	var bestKey, bestValue string
	found := false

	for key, raw := range m {
		star := indexByte(key, '*')
		if star < 0 {
			continue
		}
		prefix, suffix := key[:star], key[star+1:]
		if len(target) < len(prefix)+len(suffix) {
			continue
		}
		if target[:len(prefix)] != prefix || target[len(target)-len(suffix):] != suffix {
			continue
		}

		resolved, ok := resolveValue(raw)
		if !ok {
			continue
		}

		matched := target[len(prefix) : len(target)-len(suffix)]
		resolvedStar := indexByte(resolved, '*')
		substituted := resolved[:resolvedStar] + matched + resolved[resolvedStar+1:]

		if !found || len(key) > len(bestKey) {
			bestKey, bestValue = key, substituted
			found = true
		}
	}

	return bestValue, found
}

func stripDotSlash(s string) string {
	if len(s) >= 2 && s[0] == '.' && s[1] == '/' {
		return s[2:]
	}
	return s
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
