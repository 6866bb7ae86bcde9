// Package layout defines where a packaged binary lives relative to its launcher.
// Both the launcher and any packaging step that populates the install
// directory must agree on it.
package layout

import (
	"path"
	"strings"
)

// BinDir is the subdirectory of the install directory holding the binary.
const BinDir = "bin"

const exeSuffix = ".exe"

// IsWindows reports whether goos identifies Windows. The comparison is case-insensitive.
func IsWindows(goos string) bool {
	return strings.ToLower(goos) == "windows"
}

// BinaryName returns the file name of the binary for the given OS.
func BinaryName(base, goos string) string {
	if IsWindows(goos) {
		return base + exeSuffix
	}
	return base
}

// BinaryPath returns <dir>/bin/<name>, joined with the separator of goos
// rather than of the host, so the result is the same wherever it is computed.
func BinaryPath(dir, base, goos string) string {
	name := BinaryName(base, goos)
	if IsWindows(goos) {
		return strings.TrimRight(dir, `\/`) + `\` + BinDir + `\` + name
	}
	return path.Join(dir, BinDir, name)
}
