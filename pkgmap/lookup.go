package pkgmap

import (
	"path/filepath"

	"github.com/Dev-Re2906/hardhat/common"
	"github.com/Dev-Re2906/hardhat/fsys"
)

// findInstalledPackage implements the standard node-module lookup
// algorithm: walking up ancestor node_modules/<installationName>/
// directories starting at startDir.
func findInstalledPackage(fs fsys.FS, startDir, installationName string) (manifestPath, depDir string, found bool, err error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, common.NodeModulesDir, installationName)
		manifest := filepath.Join(candidate, common.PackageJSONFile)
		if fs.IsDir(candidate) && fs.Exists(manifest) {
			return manifest, candidate, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", false, nil
		}
		dir = parent
	}
}
