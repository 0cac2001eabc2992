package pkgmap

import (
	"encoding/json"

	"github.com/Dev-Re2906/hardhat/common"
)

// Package is an installed Solidity package: the project itself, or one
// dependency reachable through some chain of node_modules installations.
//
// Package identity is a pointer: two Package values are the same package
// iff they are the same *Package. Distinct packages never share a
// RootSourceName or RootFSPath; Map enforces this by never constructing a
// second *Package for either value it already holds.
type Package struct {
	Name           string
	Version        string
	RootFSPath     string
	RootSourceName string

	// Exports holds the package.json "exports" field verbatim, or nil if
	// the package does not declare one.
	Exports json.RawMessage

	installations  map[string]*InstallationEdge
	userRemappings []*UserRemapping
}

// IsLocal reports whether this package lives in the workspace monorepo
// rather than under node_modules.
func (p *Package) IsLocal() bool {
	return p.Version == common.LocalVersionSentinel
}

// Remapping is the resolved {context, prefix, target} triple shared by
// both generated and user remappings once fully rewritten to canonical
// source-name prefixes.
type Remapping struct {
	Context string
	Prefix  string
	Target  string
}

// GeneratedRemapping is synthesized once per installation edge, of the
// shape {context: owner.RootSourceName+"/", prefix: installationName+"/",
// target: dependency.RootSourceName+"/"}.
type GeneratedRemapping struct {
	Remapping
}

// NpmTarget records that a user remapping's target pointed into
// node_modules, and which dependency package it resolved to.
type NpmTarget struct {
	InstallationName string
	Package          *Package
}

// UserRemapping is a remapping parsed from a remappings.txt line, after
// validation and canonical-prefix rewriting.
type UserRemapping struct {
	Remapping

	// OriginalFormat is the verbatim, trimmed source line.
	OriginalFormat string

	// Source is the absolute path of the remappings.txt the line came
	// from.
	Source string

	// TargetNpmPackage is present iff the line's target began with
	// node_modules/.
	TargetNpmPackage *NpmTarget
}

// InstallationEdge is a directed edge owner-package -> installation-name ->
// dependency-package.
type InstallationEdge struct {
	Owner            *Package
	InstallationName string
	Dependency       *Package
	Generated        *GeneratedRemapping
}
