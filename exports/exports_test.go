package exports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-Re2906/hardhat/exports"
)

func TestResolve_StringOnlyExportsRejectsSubpath(t *testing.T) {
	resolved, err := exports.Resolve([]byte(`"./src/index.sol"`), "src/Foo.sol")
	require.Error(t, err)
	assert.Empty(t, resolved)
	var nee *exports.NotExportedError
	require.ErrorAs(t, err, &nee)
	assert.Equal(t, "src/Foo.sol", nee.Subpath)
}

func TestResolve_TopLevelConditionsObjectDefault(t *testing.T) {
	resolved, err := exports.Resolve([]byte(`{"import": "./esm/index.sol", "default": "./src/index.sol"}`), "")
	require.NoError(t, err)
	assert.Equal(t, "src/index.sol", resolved)
}

func TestResolve_ExactSubpathMatch(t *testing.T) {
	raw := []byte(`{"./src/Foo.sol": "./dist/Foo.sol"}`)
	resolved, err := exports.Resolve(raw, "src/Foo.sol")
	require.NoError(t, err)
	assert.Equal(t, "dist/Foo.sol", resolved)
}

func TestResolve_ExactSubpathMatchWithConditions(t *testing.T) {
	raw := []byte(`{"./src/Foo.sol": {"import": "./esm/Foo.sol", "default": "./dist/Foo.sol"}}`)
	resolved, err := exports.Resolve(raw, "src/Foo.sol")
	require.NoError(t, err)
	assert.Equal(t, "dist/Foo.sol", resolved)
}

func TestResolve_LongestMatchingPatternWins(t *testing.T) {
	raw := []byte(`{
		"./src/*": "./dist/*",
		"./src/tokens/*": "./dist/tokens-special/*"
	}`)
	resolved, err := exports.Resolve(raw, "src/tokens/ERC20.sol")
	require.NoError(t, err)
	assert.Equal(t, "dist/tokens-special/ERC20.sol", resolved)
}

func TestResolve_PatternNoMatchingSuffix(t *testing.T) {
	raw := []byte(`{"./src/*.sol": "./dist/*.sol"}`)
	_, err := exports.Resolve(raw, "src/Foo.txt")
	require.Error(t, err)
}

func TestResolve_NoMatchAnywhere(t *testing.T) {
	raw := []byte(`{"./src/Foo.sol": "./dist/Foo.sol"}`)
	_, err := exports.Resolve(raw, "src/Bar.sol")
	require.Error(t, err)
	var nee *exports.NotExportedError
	require.ErrorAs(t, err, &nee)
}

func TestResolve_ArrayFallbackPicksFirstResolvable(t *testing.T) {
	raw := []byte(`{"./src/Foo.sol": [{"browser": "./browser/Foo.sol"}, "./dist/Foo.sol"]}`)
	resolved, err := exports.Resolve(raw, "src/Foo.sol")
	require.NoError(t, err)
	assert.Equal(t, "dist/Foo.sol", resolved)
}

func TestResolve_ConditionsObjectWithoutDefaultIsUnexported(t *testing.T) {
	raw := []byte(`{"./src/Foo.sol": {"import": "./esm/Foo.sol"}}`)
	_, err := exports.Resolve(raw, "src/Foo.sol")
	require.Error(t, err)
}
