//go:build !windows

package fs

import "os"

func isExecutable(_ string, info os.FileInfo) bool {
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
