package watcher

import "path/filepath"

// SymlinkRefresher rescans when the build-output symlink is swapped to a
// new target, the usual atomic-publish layout for dev builds.
type SymlinkRefresher struct {
	RootPath string
}

func (s *SymlinkRefresher) WatchDirectory(rootPath string, chunkDirPath string) string {
	return filepath.Dir(rootPath)
}

func (s *SymlinkRefresher) ShouldRefresh(path string, op FileSystemOp) bool {
	if path == s.RootPath &&
		(op == Write || op == Create) {
		return true
	}
	return false
}
