package pkgmap

import "strings"

// parseInstallationName extracts the leading installation name from a
// stripped npm remapping target (i.e. with the "node_modules/" prefix
// already removed), using the module-name grammar
// `(@scope/)?name` where name (and scope) start with [a-z0-9~-] and
// continue with [a-z0-9~-._].
//
// It returns the installation name and the remainder of target following
// it (without a leading '/'), or ok=false if target does not start with a
// syntactically valid module name.
// ParseInstallationName is the exported form used by callers outside this
// package (the Resolver's npm-import syntax check) that need the same
// grammar applied to a direct import string rather than a stripped
// remapping target.
func ParseInstallationName(target string) (installationName, remainder string, ok bool) {
	return parseInstallationName(target)
}

func parseInstallationName(target string) (installationName, remainder string, ok bool) {
	rest := target
	prefix := ""

	if strings.HasPrefix(rest, "@") {
		scope, ok := takeNameSegment(rest[1:])
		if !ok {
			return "", "", false
		}
		prefix = "@" + scope + "/"
		rest = rest[1+len(scope):]
		if !strings.HasPrefix(rest, "/") {
			return "", "", false
		}
		rest = rest[1:]
	}

	name, ok := takeNameSegment(rest)
	if !ok {
		return "", "", false
	}

	installationName = prefix + name
	remainder = strings.TrimPrefix(rest[len(name):], "/")
	return installationName, remainder, true
}

// takeNameSegment consumes the longest prefix of s matching
// [a-z0-9~-][a-z0-9~-._]*.
func takeNameSegment(s string) (string, bool) {
	if len(s) == 0 || !isNameStart(s[0]) {
		return "", false
	}

	i := 1
	for i < len(s) && isNameCont(s[i]) {
		i++
	}
	return s[:i], true
}

func isNameStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') || c == '~' || c == '-'
}

func isNameCont(c byte) bool {
	return isNameStart(c) || c == '.' || c == '_'
}
