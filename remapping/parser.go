// Package remapping implements the remapping line parser (component A):
// turning one raw, already-trimmed, non-comment line of a remappings.txt
// file into a {context, prefix, target} triple, with no I/O and no
// knowledge of packages.
package remapping

import "strings"

// Raw is a syntactically valid, unresolved remapping line: the context may
// be empty, but prefix and target are always non-empty strings as they
// appeared in the source line.
type Raw struct {
	Context string
	Prefix  string
	Target  string
}

// SyntaxError reports why a line could not be parsed as a remapping at all.
// It is distinct from the slash-ending validation the Map performs, so
// callers can report the two failure modes separately, per spec.
type SyntaxError struct {
	Line   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return "invalid remapping syntax: " + e.Reason + ": " + e.Line
}

// Parse parses a single trimmed, non-empty, non-comment line using the
// grammar `[<context> ':'] <prefix> '=' <target>`.
//
// The context is the longest prefix up to the first ':' that occurs
// strictly before the first '='. Prefix is the text between that optional
// ':' and the '='. Target is everything after the '='.
func Parse(line string) (Raw, error) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return Raw{}, &SyntaxError{Line: line, Reason: "missing '='"}
	}

	beforeEq := line[:eq]
	target := line[eq+1:]

	var context, prefix string
	if colon := strings.IndexByte(beforeEq, ':'); colon >= 0 {
		context = beforeEq[:colon]
		prefix = beforeEq[colon+1:]
	} else {
		prefix = beforeEq
	}

	if prefix == "" {
		return Raw{}, &SyntaxError{Line: line, Reason: "empty prefix"}
	}
	if target == "" {
		return Raw{}, &SyntaxError{Line: line, Reason: "empty target"}
	}

	return Raw{Context: context, Prefix: prefix, Target: target}, nil
}

// TrimLine applies the caller-side trimming the Map performs before calling
// Parse: ASCII whitespace trimming, with blank and '#'-comment lines
// reported via the ok return being false.
func TrimLine(raw string) (line string, ok bool) {
	line = strings.Trim(raw, " \t\r")
	if line == "" || line[0] == '#' {
		return "", false
	}
	return line, true
}
