package resolver

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Dev-Re2906/hardhat/common"
	"github.com/Dev-Re2906/hardhat/fsys"
	"github.com/Dev-Re2906/hardhat/pathutil"
	"github.com/Dev-Re2906/hardhat/pkgmap"
	"github.com/Dev-Re2906/hardhat/solast"
)

// Resolver owns the Package Map and the sourceName -> ResolvedFile intern
// table. A single mutex guards every public operation for its entire
// duration: the Package Map has no locking of its own and is only safe to
// use through a Resolver.
type Resolver struct {
	mu sync.Mutex

	fs fsys.FS
	pm *pkgmap.Map

	files map[string]*ResolvedFile
}

// New creates a Resolver over an already-constructed Package Map.
func New(fs fsys.FS, pm *pkgmap.Map) *Resolver {
	return &Resolver{
		fs:    fs,
		pm:    pm,
		files: make(map[string]*ResolvedFile),
	}
}

// recoverInternal converts a panic raised by panicInternal (or by pkgmap's
// own invariant checks) into an *InternalError (or *pkgmap.InternalError)
// return value, the "bug" channel distinct from the
// enumerated error taxonomies. It must be deferred by every public
// method, after the mutex Unlock defer so the lock is always released
// even on panic.
func recoverInternal(errOut *error) {
	if r := recover(); r != nil {
		if ie, ok := r.(*InternalError); ok {
			*errOut = ie
			return
		}
		if pe, ok := r.(*pkgmap.InternalError); ok {
			*errOut = pe
			return
		}
		panic(r)
	}
}

func panicInternal(format string, args ...any) {
	panic(&InternalError{Message: fmt.Sprintf(format, args...)})
}

// ResolveProjectFile resolves an absolute file path that must lie under
// the project root, exist, and not sit under any node_modules.
func (r *Resolver) ResolveProjectFile(ctx context.Context, absPath string) (file *ResolvedFile, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer recoverInternal(&err)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	project := r.pm.ProjectPackage()

	rel, relErr := filepath.Rel(project.RootFSPath, absPath)
	if relErr != nil || strings.HasPrefix(rel, "..") {
		return nil, &ProjectRootError{Kind: ProjectRootFileNotInProject, Path: absPath}
	}

	if underNodeModules(rel) {
		return nil, &ProjectRootError{Kind: ProjectRootFileInNodeModules, Path: absPath}
	}

	// Cache lookup with caller-supplied casing first, to avoid I/O when
	// possible.
	candidateSourceName := pathutil.Join(common.ProjectRootSourceName, pathutil.FSPathToSourceName(rel))
	if cached, ok := r.files[candidateSourceName]; ok {
		return cached, nil
	}

	truePath, exists, ioErr := r.fs.TrueCasePath(project.RootFSPath, rel)
	if ioErr != nil {
		panicInternal("true-case lookup failed for %s: %v", absPath, ioErr)
	}
	if !exists {
		return nil, &ProjectRootError{Kind: ProjectRootFileDoesntExist, Path: absPath}
	}

	trueRel, relErr := filepath.Rel(project.RootFSPath, truePath)
	if relErr != nil {
		panicInternal("true path %s escaped project root %s", truePath, project.RootFSPath)
	}
	sourceName := pathutil.Join(common.ProjectRootSourceName, pathutil.FSPathToSourceName(trueRel))

	// Second cache lookup, now keyed by the OS-normalized true casing.
	if cached, ok := r.files[sourceName]; ok {
		return cached, nil
	}

	return r.readAndIntern(sourceName, truePath, project)
}

func (r *Resolver) readAndIntern(sourceName, fsPath string, pkg *pkgmap.Package) (*ResolvedFile, error) {
	data, err := r.fs.ReadFile(fsPath)
	if err != nil {
		panicInternal("unable to read %s after existence check succeeded: %v", fsPath, err)
	}

	analysis := solast.Analyze(string(data))

	file := &ResolvedFile{
		SourceName:     sourceName,
		FSPath:         fsPath,
		Package:        pkg,
		Text:           string(data),
		ImportPaths:    analysis.ImportPaths,
		VersionPragmas: analysis.VersionPragmas,
	}
	r.files[sourceName] = file
	return file, nil
}

func underNodeModules(relPath string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(relPath), "/") {
		if seg == common.NodeModulesDir {
			return true
		}
	}
	return false
}

