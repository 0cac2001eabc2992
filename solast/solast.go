// Package solast is the external Solidity analyzer the resolution core is
// driven through: it extracts import strings and version pragmas from a
// source buffer via a single forward scan, with no real parsing or
// semantic analysis beyond that.
package solast

import (
	"regexp"
	"strings"
)

// VersionPragma is one `pragma solidity <constraint>;` directive.
type VersionPragma struct {
	Constraint string
}

// Analysis is everything the resolution core needs from a source buffer.
type Analysis struct {
	ImportPaths    []string
	VersionPragmas []VersionPragma
}

var (
	importRe = regexp.MustCompile(`import\s+(?:[^"']*?\bfrom\s+)?["']([^"']+)["']`)
	pragmaRe = regexp.MustCompile(`pragma\s+solidity\s+([^;]+);`)
)

// Analyze scans source text for import and pragma directives, skipping
// line (//) and block (/* */) comments so commented-out imports are not
// mistaken for real ones.
func Analyze(source string) Analysis {
	stripped := stripComments(source)

	var a Analysis
	for _, m := range importRe.FindAllStringSubmatch(stripped, -1) {
		a.ImportPaths = append(a.ImportPaths, m[1])
	}
	for _, m := range pragmaRe.FindAllStringSubmatch(stripped, -1) {
		a.VersionPragmas = append(a.VersionPragmas, VersionPragma{Constraint: strings.TrimSpace(m[1])})
	}
	return a
}

// stripComments replaces each character of a comment with a single space,
// preserving line structure so downstream regexes never match inside one.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	runes := []rune(src)
	n := len(runes)
	i := 0
	for i < n {
		switch {
		case runes[i] == '/' && i+1 < n && runes[i+1] == '/':
			for i < n && runes[i] != '\n' {
				b.WriteByte(' ')
				i++
			}
		case runes[i] == '/' && i+1 < n && runes[i+1] == '*':
			b.WriteByte(' ')
			b.WriteByte(' ')
			i += 2
			for i < n && !(runes[i] == '*' && i+1 < n && runes[i+1] == '/') {
				if runes[i] == '\n' {
					b.WriteByte('\n')
				} else {
					b.WriteByte(' ')
				}
				i++
			}
			if i < n {
				b.WriteByte(' ')
				b.WriteByte(' ')
				i += 2
			}
		case runes[i] == '"' || runes[i] == '\'':
			quote := runes[i]
			b.WriteRune(runes[i])
			i++
			for i < n && runes[i] != quote {
				b.WriteRune(runes[i])
				if runes[i] == '\\' && i+1 < n {
					i++
					b.WriteRune(runes[i])
				}
				i++
			}
			if i < n {
				b.WriteRune(runes[i])
				i++
			}
		default:
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}
