// Package resolver implements the Resolver: given a starting file and an
// import, it classifies the import, picks the best applicable remapping,
// validates the resulting path on disk, caches resolved files, and
// returns either a resolved-file record or a structured error.
package resolver

import (
	"github.com/Dev-Re2906/hardhat/common"
	"github.com/Dev-Re2906/hardhat/pkgmap"
	"github.com/Dev-Re2906/hardhat/solast"
)

// ResolvedFile is either a project file or an npm package file. It is
// created on first successful resolution, interned by SourceName, and
// never mutated thereafter.
type ResolvedFile struct {
	SourceName string
	FSPath     string
	Package    *pkgmap.Package

	Text           string
	ImportPaths    []string
	VersionPragmas []solast.VersionPragma
}

// IsProjectFile reports whether this file belongs to the project package
// rather than an npm dependency.
func (f *ResolvedFile) IsProjectFile() bool {
	return f.Package.RootSourceName == common.ProjectRootSourceName
}

// AppliedRemapping is the remapping (user or generated) carried alongside
// a successful resolution, nil if none applied.
type AppliedRemapping = pkgmap.Remapping
