// Package pathutil implements the source-name path utilities of the
// resolution core (component B): joining, splitting, and converting
// between on-disk paths and canonical, OS-independent source names.
//
// Source names always use '/' regardless of host OS. No normalization of
// "." or ".." is performed; callers guarantee forward-only relative paths.
package pathutil

import (
	"os"
	"strings"

	"github.com/samber/lo"
)

// Join concatenates source-name segments with single '/' separators,
// collapsing any runs of slashes produced by empty or slash-terminated
// segments.
func Join(parts ...string) string {
	nonEmpty := lo.Filter(parts, func(p string, _ int) bool { return p != "" })
	joined := strings.Join(nonEmpty, "/")

	var b strings.Builder
	b.Grow(len(joined))
	lastSlash := false
	for _, r := range joined {
		if r == '/' {
			if lastSlash {
				continue
			}
			lastSlash = true
		} else {
			lastSlash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Dir returns the source-name directory portion of sourceName, "" if
// sourceName has no '/'.
func Dir(sourceName string) string {
	if i := strings.LastIndexByte(sourceName, '/'); i >= 0 {
		return sourceName[:i]
	}
	return ""
}

// FSPathToSourceName converts an OS-native relative path into a canonical
// '/'-separated source-name fragment.
func FSPathToSourceName(relative string) string {
	if os.PathSeparator == '/' {
		return relative
	}
	return strings.ReplaceAll(relative, string(os.PathSeparator), "/")
}

// SourceNameToFSPath converts a canonical '/'-separated source-name
// fragment into an OS-native relative path.
func SourceNameToFSPath(sourceName string) string {
	if os.PathSeparator == '/' {
		return sourceName
	}
	return strings.ReplaceAll(sourceName, "/", string(os.PathSeparator))
}

// HasPrefix reports whether prefix is a '/'-respecting prefix of s: either
// s == prefix, or s continues past prefix with a '/' (or prefix already
// ends in '/').
func HasPrefix(s, prefix string) bool {
	if prefix == "" {
		return true
	}
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	if strings.HasSuffix(prefix, "/") {
		return true
	}
	return len(s) == len(prefix) || s[len(prefix)] == '/'
}

// EnsureTrailingSlash appends '/' to s if it does not already end with one.
// The empty string is returned unchanged (used for the optional context
// fragment, which may legally be empty).
func EnsureTrailingSlash(s string) string {
	if s == "" || strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
