// Package common holds small, shared constants used across the resolution
// core: file names the core looks for on disk, and the sentinel values its
// data model relies on.
package common

// PackageJSONFile is the manifest file name read for both the project and
// every installed dependency.
const PackageJSONFile = "package.json"

// RemappingsFileName is the literal file name searched for anywhere under a
// package's root, excluding node_modules subtrees.
const RemappingsFileName = "remappings.txt"

// NodeModulesDir is the directory segment that marks the boundary of an
// installed dependency tree.
const NodeModulesDir = "node_modules"

// LocalVersionSentinel is the version assigned to a package that lives in
// the same workspace monorepo as the project rather than under node_modules.
const LocalVersionSentinel = "local"

// ProjectRootSourceName is the canonical source-name prefix of the project
// package itself.
const ProjectRootSourceName = "project"

// NpmSourceNamePrefix prefixes every dependency package's canonical source
// name: "npm/<name>@<version>".
const NpmSourceNamePrefix = "npm/"

// ResolverVersion is the current resolver core version string.
const ResolverVersion = "0.1.0"

// HardhatConsoleImport is the special-cased npm import that always receives
// a targeted generated remapping regardless of whether package exports
// rewrote its subpath.
const HardhatConsoleImport = "hardhat/console.sol"
