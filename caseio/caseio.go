// Package caseio discovers the OS-canonical ("true") casing of a path on a
// case-insensitive file system, and detects whether the underlying file
// system is case-insensitive at all. It is the resolution core's only
// platform-specific component: the fast path on Windows uses
// golang.org/x/sys/windows to query a single directory entry instead of
// listing the whole directory.
package caseio

import (
	"os"
	"path/filepath"
	"strings"
)

// TrueCasePath walks segments (the parts of a relative path, already split
// by the caller) under root segment by segment, resolving each segment to its on-disk casing. It returns the
// OS-native absolute path with true casing, and whether the full path
// exists. A false return with a nil error means "does not exist", not a
// failure.
func TrueCasePath(root string, segments []string) (truePath string, exists bool, err error) {
	current := root
	for _, want := range segments {
		if want == "" {
			continue
		}

		trueName, found, lookupErr := lookupEntry(current, want)
		if lookupErr != nil {
			return "", false, lookupErr
		}
		if !found {
			return "", false, nil
		}
		current = filepath.Join(current, trueName)
	}

	return current, true, nil
}

// IsCaseInsensitive probes dir by stat-ing a case-flipped variant of an
// existing entry. It is best-effort: callers should treat an error as
// "assume case-sensitive" rather than fail resolution outright.
func IsCaseInsensitive(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		name := e.Name()
		flipped := flipCase(name)
		if flipped == name {
			// Name has no alphabetic characters to flip; try another entry.
			continue
		}
		if _, statErr := os.Lstat(filepath.Join(dir, flipped)); statErr == nil {
			return true, nil
		}
		return false, nil
	}
	// No entry could be used to probe; assume case-sensitive (the common
	// default on the platforms this resolver ships for outside Windows/macOS).
	return false, nil
}

func flipCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case 'a' <= r && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case 'A' <= r && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
