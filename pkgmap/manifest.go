package pkgmap

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/Dev-Re2906/hardhat/common"
	"github.com/Dev-Re2906/hardhat/fsys"
)

// manifest is the subset of package.json the core reads.
type manifest struct {
	Name    string          `json:"name"`
	Version string          `json:"version"`
	Exports json.RawMessage `json:"exports,omitempty"`
}

// readManifest reads and parses <dir>/package.json.
func readManifest(fs fsys.FS, dir string) (manifest, error) {
	path := filepath.Join(dir, common.PackageJSONFile)
	data, err := fs.ReadFile(path)
	if err != nil {
		return manifest{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return manifest{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}
