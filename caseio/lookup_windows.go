//go:build windows

package caseio

import (
	"path/filepath"
	"syscall"

	"golang.org/x/sys/windows"
)

// lookupEntry asks Windows directly for the on-disk name of dir/want via
// FindFirstFile, which performs a case-insensitive match and returns the
// true casing without us listing the whole directory.
func lookupEntry(dir, want string) (trueName string, found bool, err error) {
	pattern := filepath.Join(dir, want)
	patternPtr, err := windows.UTF16PtrFromString(pattern)
	if err != nil {
		return "", false, err
	}

	var data windows.Win32finddata
	handle, err := windows.FindFirstFile(patternPtr, &data)
	if err != nil {
		if err == windows.ERROR_FILE_NOT_FOUND || err == syscall.ENOENT {
			return "", false, nil
		}
		return "", false, err
	}
	defer windows.FindClose(handle)

	return windows.UTF16ToString(data.FileName[:]), true, nil
}
