// Package fsys is the file-system abstraction the resolution core is
// driven through: existence checks, directory walks, UTF-8 reads, and
// true-case path discovery, injectable so tests never touch disk.
package fsys

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Dev-Re2906/hardhat/caseio"
)

// FS is the external file-system collaborator consumed by pkgmap and
// resolver.
type FS interface {
	// ReadFile reads the full contents of an absolute path as bytes.
	ReadFile(absPath string) ([]byte, error)

	// Exists reports whether absPath exists (as any kind of entry).
	Exists(absPath string) bool

	// IsDir reports whether absPath exists and is a directory.
	IsDir(absPath string) bool

	// WalkFiles enumerates every regular file absolute path under root,
	// in deterministic (sorted) order, skipping any subtree rooted at a
	// directory segment literally named skipDirName.
	WalkFiles(root, skipDirName string) ([]string, error)

	// TrueCasePath resolves relPath (OS-native separators, relative to
	// root) to its on-disk casing. ok is false if the path does not
	// exist at all; when ok is true, truePath may still differ from
	// root+relPath only in casing.
	TrueCasePath(root, relPath string) (truePath string, ok bool, err error)
}

// OS is the real, disk-backed FS implementation.
type OS struct{}

var _ FS = OS{}

func (OS) ReadFile(absPath string) ([]byte, error) {
	return os.ReadFile(absPath)
}

func (OS) Exists(absPath string) bool {
	_, err := os.Lstat(absPath)
	return err == nil
}

func (OS) IsDir(absPath string) bool {
	info, err := os.Stat(absPath)
	return err == nil && info.IsDir()
}

func (OS) WalkFiles(root, skipDirName string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == skipDirName {
				return filepath.SkipDir
			}
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

func (OS) TrueCasePath(root, relPath string) (string, bool, error) {
	var segments []string
	if relPath != "" {
		segments = strings.Split(filepath.ToSlash(relPath), "/")
	}
	return caseio.TrueCasePath(root, segments)
}
