// Package vcpath holds helpers for repository ("$/...") and local paths.
package vcpath

import (
	"path/filepath"
	"strings"
)

// Root is the repository root path.
const Root = "$/"

// IsServerPath reports whether p looks like a repository path.
func IsServerPath(p string) bool {
	return strings.HasPrefix(p, "$/") || p == "$"
}

// Equal compares two repository paths. Case is ignored unless caseSensitive is set.
func Equal(a, b string, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

// CompareTopDown orders repository paths so that parents sort before their children.
// The comparison ignores case.
func CompareTopDown(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// FileName returns the last segment of a repository path.
func FileName(serverPath string) string {
	i := strings.LastIndexAny(serverPath, `/\`)
	if i == -1 {
		return serverPath
	}
	return serverPath[i+1:]
}

// LocalFileName returns the last element of a local path.
func LocalFileName(localPath string) string {
	if localPath == "" {
		return ""
	}
	return filepath.Base(localPath)
}

// Extension returns the extension of a file name without the leading dot.
func Extension(fileName string) string {
	return strings.TrimPrefix(filepath.Ext(fileName), ".")
}
