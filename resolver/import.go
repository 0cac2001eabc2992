package resolver

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/Dev-Re2906/hardhat/common"
	"github.com/Dev-Re2906/hardhat/exports"
	"github.com/Dev-Re2906/hardhat/pathutil"
	"github.com/Dev-Re2906/hardhat/pkgmap"
)

// ResolveImport resolves importPath as seen from an already-resolved file.
func (r *Resolver) ResolveImport(ctx context.Context, from *ResolvedFile, importPath string) (file *ResolvedFile, remap *AppliedRemapping, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer recoverInternal(&err)

	return r.resolveImportLocked(ctx, from, importPath)
}

// ResolveNpmDependencyFileAsRoot resolves a bare module string as a root
// file, by fabricating an in-memory "fake project file" and delegating to
// the import path, then remapping every possible import failure onto the
// corresponding NPM_ROOT_FILE_* kind.
func (r *Resolver) ResolveNpmDependencyFileAsRoot(ctx context.Context, npmModule string) (file *ResolvedFile, remap *AppliedRemapping, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer recoverInternal(&err)

	project := r.pm.ProjectPackage()
	fake := &ResolvedFile{
		SourceName: project.RootSourceName,
		FSPath:     project.RootFSPath,
		Package:    project,
	}

	resolved, applied, rerr := r.resolveImportLocked(ctx, fake, npmModule)
	if rerr != nil {
		ie, ok := rerr.(*ImportError)
		if !ok {
			return nil, nil, rerr
		}

		switch ie.Kind {
		case ImportWithInvalidNpmSyntax, ImportWithWindowsPathSeparators:
			return nil, nil, &NpmRootError{Kind: NpmRootFileNameWithInvalidFormat, Module: npmModule}
		case ImportOfUninstalledPackage:
			return nil, nil, &NpmRootError{Kind: NpmRootFileOfUninstalledPackage, Module: npmModule}
		case ImportOfNpmPackageWithRemappingErrors:
			return nil, nil, &NpmRootError{Kind: NpmRootFileOfPackageWithRemappingErrors, Module: npmModule, RemappingErrors: ie.RemappingErrors}
		case ImportDoesntExist:
			return nil, nil, &NpmRootError{Kind: NpmRootFileDoesntExistWithinItsPackage, Module: npmModule}
		case ImportInvalidCasing:
			return nil, nil, &NpmRootError{Kind: NpmRootFileWithIncorrectCasing, Module: npmModule, CorrectCasing: ie.CorrectCasing}
		case ImportOfNonExportedNpmFile:
			return nil, nil, &NpmRootError{Kind: NpmRootFileNonExportedFile, Module: npmModule}
		case IllegalRelativeImport:
			panicInternal("resolveNpmDependencyFileAsRoot produced ILLEGAL_RELATIVE_IMPORT for %q, which cannot occur by construction", npmModule)
		default:
			panicInternal("unhandled import error kind %q while resolving npm root %q", ie.Kind, npmModule)
		}
	}

	if resolved.IsProjectFile() {
		return nil, nil, &NpmRootError{Kind: NpmRootFileResolvesToProjectFile, Module: npmModule}
	}
	return resolved, applied, nil
}

func (r *Resolver) resolveImportLocked(ctx context.Context, from *ResolvedFile, importPath string) (*ResolvedFile, *AppliedRemapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if strings.ContainsRune(importPath, '\\') {
		return nil, nil, &ImportError{Kind: ImportWithWindowsPathSeparators, From: from.SourceName, Import: importPath}
	}

	relative := strings.HasPrefix(importPath, "./") || strings.HasPrefix(importPath, "../")

	var directImport string
	if relative {
		// path.Join cleans "." and ".." segments, unlike pathutil.Join
		// (which is reserved for joining already-canonical source-name
		// fragments); relative-import resolution needs the former.
		directImport = path.Join(pathutil.Dir(from.SourceName), importPath)
		if !pathutil.HasPrefix(directImport, from.Package.RootSourceName) {
			return nil, nil, &ImportError{Kind: IllegalRelativeImport, From: from.SourceName, Import: importPath}
		}
	} else {
		directImport = importPath
	}

	chosen := selectRemapping(r.pm.UserRemappings(from.Package), from.SourceName, directImport)
	if chosen != nil {
		if relative {
			panicInternal("relative import %q from %q matched user remapping %q=%q; remapping sets must never shadow relative imports", importPath, from.SourceName, chosen.Prefix, chosen.Target)
		}

		sourceName := strings.Replace(directImport, chosen.Prefix, chosen.Target, 1)
		resolved, rerr := r.validateAndIntern(sourceName)
		if rerr != nil {
			return nil, nil, rerr
		}
		return resolved, &chosen.Remapping, nil
	}

	if !relative {
		resolved, applied, rerr := r.resolveNpmImport(ctx, from, importPath, directImport)
		if rerr == nil {
			return resolved, applied, nil
		}

		ie, ok := rerr.(*ImportError)
		if ok && (ie.Kind == ImportOfUninstalledPackage || ie.Kind == ImportWithInvalidNpmSyntax) {
			if suggestion, found := r.findPureLocalImport(from, importPath); found {
				return nil, nil, &ImportError{
					Kind:      ImportDoesntExist,
					From:      from.SourceName,
					Import:    importPath,
					Suggested: suggestion,
				}
			}
		}
		return nil, nil, rerr
	}

	// Relative, no remapping: resolve directly under the owning package.
	resolved, rerr := r.validateAndIntern(directImport)
	if rerr != nil {
		return nil, nil, rerr
	}
	return resolved, nil, nil
}

// selectRemapping implements remapping selection: among
// remappings whose context prefixes from.sourceName and whose prefix
// prefixes directImport, pick the longest context, then longest prefix,
// then the most recently parsed (reverse discovery order, since the slice
// is walked back to front and ties keep the first-found = most recent).
func selectRemapping(candidates []*pkgmap.UserRemapping, fromSourceName, directImport string) *pkgmap.UserRemapping {
	var best *pkgmap.UserRemapping
	for i := len(candidates) - 1; i >= 0; i-- {
		c := candidates[i]
		if c.Context != "" && !pathutil.HasPrefix(fromSourceName, strings.TrimSuffix(c.Context, "/")) {
			continue
		}
		if !strings.HasPrefix(directImport, c.Prefix) {
			continue
		}
		if best == nil || len(c.Context) > len(best.Context) ||
			(len(c.Context) == len(best.Context) && len(c.Prefix) > len(best.Prefix)) {
			best = c
		}
	}
	return best
}

// resolveNpmImport implements npm-import resolution.
func (r *Resolver) resolveNpmImport(ctx context.Context, from *ResolvedFile, importPath, directImport string) (*ResolvedFile, *AppliedRemapping, error) {
	packageName, subpath, ok := pkgmap.ParseInstallationName(directImport)
	if !ok {
		return nil, nil, &ImportError{Kind: ImportWithInvalidNpmSyntax, From: from.SourceName, Import: importPath}
	}

	dep, errs := r.pm.ResolveDependencyByInstallationName(ctx, from.Package, packageName)
	if dep == nil {
		return nil, nil, &ImportError{Kind: ImportOfUninstalledPackage, From: from.SourceName, Import: importPath}
	}
	if len(errs) > 0 {
		return nil, nil, &ImportError{Kind: ImportOfNpmPackageWithRemappingErrors, From: from.SourceName, Import: importPath, RemappingErrors: errs}
	}

	resolvedSubpath := subpath
	subpathChanged := false
	if len(dep.Package.Exports) > 0 {
		canonical, eerr := exports.Resolve(dep.Package.Exports, subpath)
		if eerr != nil {
			return nil, nil, &ImportError{Kind: ImportOfNonExportedNpmFile, From: from.SourceName, Import: importPath}
		}
		resolvedSubpath = canonical
		subpathChanged = canonical != subpath
	}

	sourceName := pathutil.Join(dep.Package.RootSourceName, resolvedSubpath)

	var applied pkgmap.Remapping
	if subpathChanged || importPath == common.HardhatConsoleImport {
		applied = r.pm.GenerateNpmFileRemapping(from.Package, directImport, sourceName).Remapping
	} else {
		applied = dep.Generated.Remapping
	}

	resolved, rerr := r.validateAndIntern(sourceName)
	if rerr != nil {
		return nil, nil, rerr
	}
	return resolved, &applied, nil
}

// findPureLocalImport implements the supplemented pure-local-import
// diagnostic: walk dirname(from.fsPath) upward toward
// from.package.rootFsPath looking for a literal file at importPath, so a
// user who wrote a project-local direct import (disallowed) gets a
// tailored suggestion instead of a bare "uninstalled package" error.
func (r *Resolver) findPureLocalImport(from *ResolvedFile, importPath string) (*SuggestedRemapping, bool) {
	dir := filepath.Dir(from.FSPath)
	root := from.Package.RootFSPath

	for {
		candidate := filepath.Join(dir, filepath.FromSlash(importPath))
		if r.fs.Exists(candidate) {
			rel, err := filepath.Rel(root, dir)
			if err != nil {
				return nil, false
			}
			ctxFragment := pathutil.EnsureTrailingSlash(pathutil.Join(from.Package.RootSourceName, pathutil.FSPathToSourceName(rel)))
			return &SuggestedRemapping{
				Context: "",
				Prefix:  importPath,
				Target:  ctxFragment,
			}, true
		}

		if dir == root {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir || !strings.HasPrefix(dir, root) {
			break
		}
		dir = parent
	}
	return nil, false
}

func (r *Resolver) validateAndIntern(sourceName string) (*ResolvedFile, error) {
	if cached, ok := r.files[sourceName]; ok {
		return cached, nil
	}

	pkg, relFSPath, ok := r.pm.PackageForSourceName(sourceName)
	if !ok {
		panicInternal("source name %q does not resolve under any known package root", sourceName)
	}

	truePath, exists, err := r.fs.TrueCasePath(pkg.RootFSPath, relFSPath)
	if err != nil {
		panicInternal("true-case lookup failed for %s: %v", sourceName, err)
	}
	if !exists {
		return nil, &ImportError{Kind: ImportDoesntExist, Import: sourceName}
	}

	wantPath := filepath.Join(pkg.RootFSPath, relFSPath)
	if truePath != wantPath {
		correctRel, _ := filepath.Rel(pkg.RootFSPath, truePath)
		correctSourceName := pathutil.Join(pkg.RootSourceName, pathutil.FSPathToSourceName(correctRel))
		return nil, &ImportError{Kind: ImportInvalidCasing, Import: sourceName, CorrectCasing: correctSourceName}
	}

	return r.readAndIntern(sourceName, truePath, pkg)
}
