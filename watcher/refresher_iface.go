package watcher

type FileSystemOp int32

// Filesystem operations that are monitored for changes
const (
	Create FileSystemOp = iota
	Write
	Remove
	Rename
	Chmod
)

// A Refresher is used to determine when the chunk tree needs to be rescanned
type Refresher interface {
	// @return The directory path to watch for changes.
	// @param rootPath The root of the build output path
	// @param chunkDirPath The chunk subdirectory within the root
	WatchDirectory(rootPath string, chunkDirPath string) string

	// @return If the chunk tree needs to be rescanned
	// @param path The path that triggered the FileSystemOp
	// @param The Filesystem op that happened on the directory returned from WatchDirectory
	ShouldRefresh(path string, op FileSystemOp) bool
}
