package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-Re2906/hardhat/fsys"
	"github.com/Dev-Re2906/hardhat/pkgmap"
	"github.com/Dev-Re2906/hardhat/resolver"
)

func newResolver(t *testing.T, fs *fsys.Fake, root string) *resolver.Resolver {
	t.Helper()
	pm, errs := pkgmap.New(context.Background(), fs, root)
	require.Empty(t, errs)
	return resolver.New(fs, pm)
}

func baseFS() *fsys.Fake {
	return fsys.NewFake().
		Put("/p/package.json", `{"name": "top", "version": "1.0.0"}`).
		Put("/p/contracts/A.sol", "pragma solidity ^0.8.0;\nimport \"./B.sol\";\n").
		Put("/p/contracts/B.sol", "pragma solidity ^0.8.0;\n").
		Put("/p/contracts/Local.sol", "pragma solidity ^0.8.0;\n").
		Put("/p/node_modules/dep/package.json", `{"name": "dep", "version": "2.0.0"}`).
		Put("/p/node_modules/dep/src/Dep.sol", "pragma solidity ^0.8.0;\n")
}

func TestResolveProjectFile_Success(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")

	file, err := r.ResolveProjectFile(context.Background(), "/p/contracts/A.sol")
	require.NoError(t, err)
	assert.Equal(t, "project/contracts/A.sol", file.SourceName)
	assert.True(t, file.IsProjectFile())
	assert.Equal(t, []string{"./B.sol"}, file.ImportPaths)
	require.Len(t, file.VersionPragmas, 1)
	assert.Equal(t, "^0.8.0", file.VersionPragmas[0].Constraint)
}

func TestResolveProjectFile_Idempotent(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")

	a, err := r.ResolveProjectFile(context.Background(), "/p/contracts/A.sol")
	require.NoError(t, err)
	b, err := r.ResolveProjectFile(context.Background(), "/p/contracts/A.sol")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestResolveProjectFile_NotInProject(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")

	_, err := r.ResolveProjectFile(context.Background(), "/elsewhere/X.sol")
	require.Error(t, err)
	pe, ok := err.(*resolver.ProjectRootError)
	require.True(t, ok)
	assert.Equal(t, resolver.ProjectRootFileNotInProject, pe.Kind)
}

func TestResolveProjectFile_DoesntExist(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")

	_, err := r.ResolveProjectFile(context.Background(), "/p/contracts/Missing.sol")
	require.Error(t, err)
	pe, ok := err.(*resolver.ProjectRootError)
	require.True(t, ok)
	assert.Equal(t, resolver.ProjectRootFileDoesntExist, pe.Kind)
}

func TestResolveProjectFile_InNodeModules(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")

	_, err := r.ResolveProjectFile(context.Background(), "/p/node_modules/dep/src/Dep.sol")
	require.Error(t, err)
	pe, ok := err.(*resolver.ProjectRootError)
	require.True(t, ok)
	assert.Equal(t, resolver.ProjectRootFileInNodeModules, pe.Kind)
}

func TestResolveImport_Relative(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")
	ctx := context.Background()

	a, err := r.ResolveProjectFile(ctx, "/p/contracts/A.sol")
	require.NoError(t, err)

	b, remap, err := r.ResolveImport(ctx, a, "./B.sol")
	require.NoError(t, err)
	assert.Nil(t, remap)
	assert.Equal(t, "project/contracts/B.sol", b.SourceName)
}

func TestResolveImport_IllegalRelativeEscape(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")
	ctx := context.Background()

	a, err := r.ResolveProjectFile(ctx, "/p/contracts/A.sol")
	require.NoError(t, err)

	_, _, err = r.ResolveImport(ctx, a, "../../../escape.sol")
	require.Error(t, err)
	ie, ok := err.(*resolver.ImportError)
	require.True(t, ok)
	assert.Equal(t, resolver.IllegalRelativeImport, ie.Kind)
}

func TestResolveImport_Npm(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")
	ctx := context.Background()

	a, err := r.ResolveProjectFile(ctx, "/p/contracts/A.sol")
	require.NoError(t, err)

	file, remap, err := r.ResolveImport(ctx, a, "dep/src/Dep.sol")
	require.NoError(t, err)
	require.NotNil(t, remap)
	assert.Equal(t, "npm/dep@2.0.0/src/Dep.sol", file.SourceName)
	assert.False(t, file.IsProjectFile())
}

func TestResolveImport_UninstalledDirectImport(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")
	ctx := context.Background()

	a, err := r.ResolveProjectFile(ctx, "/p/contracts/A.sol")
	require.NoError(t, err)

	_, _, err = r.ResolveImport(ctx, a, "nosuch/Thing.sol")
	require.Error(t, err)
	ie, ok := err.(*resolver.ImportError)
	require.True(t, ok)
	assert.Equal(t, resolver.ImportOfUninstalledPackage, ie.Kind)
}

func TestResolveImport_PureLocalDirectImportSuggestsRemapping(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")
	ctx := context.Background()

	a, err := r.ResolveProjectFile(ctx, "/p/contracts/A.sol")
	require.NoError(t, err)

	_, _, err = r.ResolveImport(ctx, a, "Local.sol")
	require.Error(t, err)
	ie, ok := err.(*resolver.ImportError)
	require.True(t, ok)
	assert.Equal(t, resolver.ImportDoesntExist, ie.Kind)
	require.NotNil(t, ie.Suggested)
	assert.Equal(t, "Local.sol", ie.Suggested.Prefix)
	assert.Equal(t, "project/contracts/", ie.Suggested.Target)
}

func TestResolveNpmDependencyFileAsRoot_Success(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")

	file, _, err := r.ResolveNpmDependencyFileAsRoot(context.Background(), "dep/src/Dep.sol")
	require.NoError(t, err)
	assert.Equal(t, "npm/dep@2.0.0/src/Dep.sol", file.SourceName)
}

func TestResolveNpmDependencyFileAsRoot_Uninstalled(t *testing.T) {
	r := newResolver(t, baseFS(), "/p")

	_, _, err := r.ResolveNpmDependencyFileAsRoot(context.Background(), "nosuch/Thing.sol")
	require.Error(t, err)
	ne, ok := err.(*resolver.NpmRootError)
	require.True(t, ok)
	assert.Equal(t, resolver.NpmRootFileOfUninstalledPackage, ne.Kind)
}
