package caseio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dev-Re2906/hardhat/caseio"
)

func TestTrueCasePath_ReturnsOnDiskCasing_NotCallerCasing(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "Contracts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Contracts", "Token.sol"), []byte("contract Token {}"), 0o644))

	truePath, exists, err := caseio.TrueCasePath(root, []string{"contracts", "token.sol"})
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, filepath.Join(root, "Contracts", "Token.sol"), truePath)
}

func TestTrueCasePath_ExactCasingMatches(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "contracts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "contracts", "Token.sol"), []byte("contract Token {}"), 0o644))

	truePath, exists, err := caseio.TrueCasePath(root, []string{"contracts", "Token.sol"})
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, filepath.Join(root, "contracts", "Token.sol"), truePath)
}

func TestTrueCasePath_NonexistentSegment(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "contracts"), 0o755))

	truePath, exists, err := caseio.TrueCasePath(root, []string{"contracts", "Missing.sol"})
	require.NoError(t, err)
	require.False(t, exists)
	require.Empty(t, truePath)
}

func TestTrueCasePath_NonexistentIntermediateDir(t *testing.T) {
	root := t.TempDir()

	truePath, exists, err := caseio.TrueCasePath(root, []string{"nope", "Token.sol"})
	require.NoError(t, err)
	require.False(t, exists)
	require.Empty(t, truePath)
}

func TestTrueCasePath_EmptySegmentsSkipped(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Token.sol"), []byte("contract Token {}"), 0o644))

	truePath, exists, err := caseio.TrueCasePath(root, []string{"", "Token.sol", ""})
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, filepath.Join(root, "Token.sol"), truePath)
}
