//go:build windows

package fs

import "os"

var executableExtensions = map[string]struct{}{
	".bat": {},
	".cmd": {},
	".com": {},
	".exe": {},
	".ps1": {},
}

func isExecutable(path string, info os.FileInfo) bool {
	if !info.Mode().IsRegular() {
		return false
	}
	_, ok := executableExtensions[lowerExt(path)]
	return ok
}
