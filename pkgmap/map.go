// Package pkgmap implements the Remapped Package Map: package discovery,
// canonical source-name assignment, remapping parsing and resolution, and
// per-package remapping lookup.
package pkgmap

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"

	"github.com/Dev-Re2906/hardhat/common"
	"github.com/Dev-Re2906/hardhat/fsys"
	"github.com/Dev-Re2906/hardhat/pathutil"
	"github.com/Dev-Re2906/hardhat/remapping"
)

// Map is the Remapped Package Map. It has no internal locking of its own:
// the single mutex lives on the Resolver, which is the only safe entry
// point into a Map. Construction (New) is the one exception, since no
// Resolver exists yet to hold the lock.
type Map struct {
	fs          fsys.FS
	projectRoot string

	// nodeModulesRoot is the ancestor-walk starting directory used when
	// the project package itself looks up an installation name. It
	// defaults to projectRoot, but New's nodeModulesRoot argument can
	// override it for monorepos where the project directory resolving
	// imports sits below the node_modules tree it should search.
	nodeModulesRoot string

	byRootSourceName map[string]*Package
	byRootFSPath     map[string]*Package

	project *Package
}

// DependencyResolution is the result of resolving an installation name to a
// dependency package, plus any remapping errors surfaced while loading it.
type DependencyResolution struct {
	Package          *Package
	Generated        *GeneratedRemapping
	RemappingErrors  []error
}

// New constructs a Map rooted at projectRoot, discovering and loading the
// full transitive package graph induced by every remappings.txt reachable
// from the project and its dependencies. Construction yields either the
// assembled map or the full, ordered error list, never both.
//
// nodeModulesRoot is optional (pass none, or ""); when given, it overrides
// projectRoot as the ancestor-walk starting point for the project
// package's own node_modules installation-name lookups.
func New(ctx context.Context, fs fsys.FS, projectRoot string, nodeModulesRoot ...string) (m *Map, errs []error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InternalError); ok {
				m, errs = nil, []error{ie}
				return
			}
			panic(r)
		}
	}()

	nmRoot := projectRoot
	if len(nodeModulesRoot) > 0 && nodeModulesRoot[0] != "" {
		nmRoot = nodeModulesRoot[0]
	}

	pm := &Map{
		fs:               fs,
		projectRoot:      projectRoot,
		nodeModulesRoot:  nmRoot,
		byRootSourceName: make(map[string]*Package),
		byRootFSPath:     make(map[string]*Package),
	}

	projMf, err := readManifest(fs, projectRoot)
	if err != nil {
		return nil, []error{&ManifestError{Path: filepath.Join(projectRoot, common.PackageJSONFile), Err: err}}
	}

	project := &Package{
		Name:           projMf.Name,
		Version:        projMf.Version,
		RootFSPath:     projectRoot,
		RootSourceName: common.ProjectRootSourceName,
		Exports:        projMf.Exports,
		installations:  make(map[string]*InstallationEdge),
	}
	pm.insert(project)
	pm.project = project

	queue := []*Package{project}
	var allErrs []error

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, []error{err}
		}

		pkg := queue[0]
		queue = queue[1:]

		newPkgs, errs := pm.discoverRemappings(ctx, pkg)
		allErrs = append(allErrs, errs...)
		queue = append(queue, newPkgs...)
	}

	if len(allErrs) > 0 {
		return nil, allErrs
	}
	return pm, nil
}

// ProjectPackage returns the root package of the workspace.
func (m *Map) ProjectPackage() *Package {
	return m.project
}

// UserRemappings returns pkg's resolved user remappings in parse order:
// nested remappings.txt files (in deterministic file-discovery order)
// before the package's own top-level remappings.txt, preserving line
// order within each file. Repeated calls return the identical slice
// value: the slice is built once, during construction, and never mutated
// afterward.
func (m *Map) UserRemappings(pkg *Package) []*UserRemapping {
	return pkg.userRemappings
}

// insert records pkg under both identity indices. Callers must already
// have verified no existing Package shares its RootSourceName or
// RootFSPath (invariants P1/P2).
func (m *Map) insert(pkg *Package) {
	m.byRootSourceName[pkg.RootSourceName] = pkg
	m.byRootFSPath[pkg.RootFSPath] = pkg
}

func (m *Map) byFSPath(absPath string) (*Package, bool) {
	p, ok := m.byRootFSPath[absPath]
	return p, ok
}

// PackageForSourceName locates the package owning a fully-qualified source
// name (e.g. "npm/lib@1.0.0/src/Foo.sol") and the OS-native path of that
// file relative to the package's root. Source-name prefixes are disjoint
// by construction (every RootSourceName is either "project" or
// "npm/<name>@<version>"), so at most one package can match.
func (m *Map) PackageForSourceName(sourceName string) (pkg *Package, relFSPath string, ok bool) {
	for _, p := range m.byRootSourceName {
		if pathutil.HasPrefix(sourceName, p.RootSourceName) {
			rel := strings.TrimPrefix(sourceName, p.RootSourceName)
			rel = strings.TrimPrefix(rel, "/")
			return p, pathutil.SourceNameToFSPath(rel), true
		}
	}
	return nil, "", false
}

// discoverRemappings finds every remappings.txt under pkg (excluding
// node_modules subtrees), parses and validates each line in deterministic
// order, and returns any newly created dependency packages (to be
// enqueued by the caller) along with accumulated errors.
func (m *Map) discoverRemappings(ctx context.Context, pkg *Package) (newPkgs []*Package, errs []error) {
	files, err := m.fs.WalkFiles(pkg.RootFSPath, common.NodeModulesDir)
	if err != nil {
		return nil, []error{err}
	}

	var nested, topLevel []string
	for _, f := range files {
		if filepath.Base(f) != common.RemappingsFileName {
			continue
		}
		dir := filepath.Dir(f)
		if dir == pkg.RootFSPath {
			topLevel = append(topLevel, f)
		} else {
			nested = append(nested, f)
		}
	}
	sort.Strings(nested)
	sort.Strings(topLevel)
	ordered := append(nested, topLevel...)

	for _, file := range ordered {
		data, err := m.fs.ReadFile(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		relDir, _ := filepath.Rel(pkg.RootFSPath, filepath.Dir(file))
		if relDir == "." {
			relDir = ""
		}
		ctxPath := pathutil.EnsureTrailingSlash(pathutil.Join(pkg.RootSourceName, pathutil.FSPathToSourceName(relDir)))

		for _, raw := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
			line, ok := remapping.TrimLine(raw)
			if !ok {
				continue
			}

			created, lineErrs := m.processLine(ctx, pkg, file, ctxPath, line)
			newPkgs = append(newPkgs, created...)
			errs = append(errs, lineErrs...)
		}
	}

	return newPkgs, errs
}

// processLine does per-line syntax/slash validation, local/npm
// classification, and rewriting into a stored UserRemapping.
func (m *Map) processLine(ctx context.Context, pkg *Package, file, ctxPath, line string) (newPkgs []*Package, errs []error) {
	parsed, err := remapping.Parse(line)
	if err != nil {
		return nil, []error{&RemappingError{Kind: RemappingWithInvalidSyntax, Source: file, Line: line}}
	}

	if !strings.HasSuffix(parsed.Prefix, "/") || !strings.HasSuffix(parsed.Target, "/") ||
		(parsed.Context != "" && !strings.HasSuffix(parsed.Context, "/")) {
		return nil, []error{&RemappingError{Kind: IllegalRemappingWithoutSlashEndings, Source: file, Line: line}}
	}

	rewrite := func(fragment string) string {
		if strings.HasPrefix(fragment, common.NpmSourceNamePrefix) {
			return fragment
		}
		return pathutil.Join(ctxPath, fragment)
	}

	if !strings.HasPrefix(parsed.Target, common.NodeModulesDir+"/") {
		// Local remapping.
		ur := &UserRemapping{
			Remapping: Remapping{
				Context: rewriteContext(ctxPath, parsed.Context),
				Prefix:  parsed.Prefix,
				Target:  rewrite(parsed.Target),
			},
			OriginalFormat: line,
			Source:         file,
		}
		pkg.userRemappings = append(pkg.userRemappings, ur)
		return nil, nil
	}

	// Npm remapping.
	stripped := strings.TrimPrefix(parsed.Target, common.NodeModulesDir+"/")
	installationName, remainder, ok := parseInstallationName(stripped)
	if !ok {
		return nil, []error{&RemappingError{Kind: RemappingWithInvalidSyntax, Source: file, Line: line}}
	}

	if installationName+"/" == stripped {
		// No-op: prefix/=node_modules/prefix/. Dropped silently.
		return nil, nil
	}

	res, depErrs, created := m.resolveDependencyByInstallationName(ctx, pkg, installationName)
	errs = append(errs, depErrs...)
	newPkgs = append(newPkgs, created...)
	if res == nil {
		errs = append(errs, &RemappingError{Kind: RemappingToUninstalledPackage, Source: file, Line: line})
		return newPkgs, errs
	}

	ur := &UserRemapping{
		Remapping: Remapping{
			Context: rewriteContext(ctxPath, parsed.Context),
			Prefix:  parsed.Prefix,
			Target:  pathutil.Join(res.Package.RootSourceName, remainder),
		},
		OriginalFormat: line,
		Source:         file,
		TargetNpmPackage: &NpmTarget{
			InstallationName: installationName,
			Package:          res.Package,
		},
	}
	pkg.userRemappings = append(pkg.userRemappings, ur)
	return newPkgs, errs
}

func rewriteContext(ctxPath, context string) string {
	if context == "" {
		return ctxPath
	}
	if strings.HasPrefix(context, common.NpmSourceNamePrefix) {
		return context
	}
	return pathutil.EnsureTrailingSlash(pathutil.Join(ctxPath, context))
}

// ResolveDependencyByInstallationName resolves (or loads) the dependency
// reachable from "from" under installationName, draining any
// newly-enqueued packages' own remapping discovery before returning.
func (m *Map) ResolveDependencyByInstallationName(ctx context.Context, from *Package, installationName string) (*DependencyResolution, []error) {
	res, errs, created := m.resolveDependencyByInstallationName(ctx, from, installationName)

	queue := created
	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]

		newPkgs, discErrs := m.discoverRemappings(ctx, pkg)
		errs = append(errs, discErrs...)
		queue = append(queue, newPkgs...)
	}

	if res != nil {
		res.RemappingErrors = errs
	}
	return res, errs
}

// resolveDependencyByInstallationName resolves without draining the
// resulting packages' own discovery (New and
// ResolveDependencyByInstallationName do that at different granularities).
func (m *Map) resolveDependencyByInstallationName(ctx context.Context, from *Package, installationName string) (res *DependencyResolution, errs []error, created []*Package) {
	if edge, ok := from.installations[installationName]; ok {
		return &DependencyResolution{Package: edge.Dependency, Generated: edge.Generated}, nil, nil
	}

	startDir := from.RootFSPath
	if from == m.project {
		startDir = m.nodeModulesRoot
	}

	manifestPath, depDir, found, err := findInstalledPackage(m.fs, startDir, installationName)
	if err != nil {
		return nil, []error{err}, nil
	}
	if !found {
		return nil, nil, nil
	}

	mf, err := readManifest(m.fs, depDir)
	if err != nil {
		return nil, []error{&ManifestError{Path: manifestPath, Err: err}}, nil
	}

	isLocal := !underAny(depDir, common.NodeModulesDir) && !pathutil.HasPrefix(pathutil.FSPathToSourceName(depDir), pathutil.FSPathToSourceName(m.projectRoot))
	version := mf.Version
	if isLocal {
		version = common.LocalVersionSentinel
	} else {
		version = canonicalizeVersion(version)
	}

	var rootSourceName string
	if depDir == m.project.RootFSPath {
		rootSourceName = common.ProjectRootSourceName
	} else {
		rootSourceName = common.NpmSourceNamePrefix + mf.Name + "@" + version
	}

	dep, isNew := m.getOrCreatePackage(rootSourceName, depDir, mf, version)

	edge := &InstallationEdge{
		Owner:            from,
		InstallationName: installationName,
		Dependency:       dep,
		Generated: &GeneratedRemapping{Remapping{
			Context: from.RootSourceName + "/",
			Prefix:  installationName + "/",
			Target:  dep.RootSourceName + "/",
		}},
	}
	from.installations[installationName] = edge

	if isNew {
		created = []*Package{dep}
	}
	return &DependencyResolution{Package: dep, Generated: edge.Generated}, nil, created
}

func (m *Map) getOrCreatePackage(rootSourceName, rootFSPath string, mf manifest, version string) (pkg *Package, isNew bool) {
	if existing, ok := m.byRootSourceName[rootSourceName]; ok {
		return existing, false
	}
	if existing, ok := m.byFSPath(rootFSPath); ok {
		panicInternal("package at %s already registered as %s but computed identity %s", rootFSPath, existing.RootSourceName, rootSourceName)
	}

	pkg = &Package{
		Name:           mf.Name,
		Version:        version,
		RootFSPath:     rootFSPath,
		RootSourceName: rootSourceName,
		Exports:        mf.Exports,
		installations:  make(map[string]*InstallationEdge),
	}
	m.insert(pkg)
	return pkg, true
}

// GenerateNpmFileRemapping returns the targeted remapping used when
// package-export subpath rewriting changed the resolved subpath.
func (m *Map) GenerateNpmFileRemapping(from *Package, directImport, sourceName string) *GeneratedRemapping {
	return &GeneratedRemapping{Remapping{
		Context: from.RootSourceName + "/",
		Prefix:  directImport,
		Target:  sourceName,
	}}
}

func canonicalizeVersion(raw string) string {
	if raw == "" {
		return raw
	}
	if v, err := semver.NewVersion(raw); err == nil {
		return v.String()
	}
	return raw
}

func underAny(path, segment string) bool {
	return lo.Contains(strings.Split(filepath.ToSlash(path), "/"), segment)
}
