package watcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymlinkRefresher(t *testing.T) {
	r := &SymlinkRefresher{RootPath: "/build/current"}

	assert.Equal(t, "/build", r.WatchDirectory("/build/current", "chunks"))

	assert.True(t, r.ShouldRefresh("/build/current", Write))
	assert.True(t, r.ShouldRefresh("/build/current", Create))
	assert.False(t, r.ShouldRefresh("/build/current", Chmod))
	assert.False(t, r.ShouldRefresh("/build/other", Write))
}

func TestDirectoryRefresherDefaultOps(t *testing.T) {
	r := &DirectoryRefresher{}
	dir := r.WatchDirectory("/build", "chunks")
	assert.Equal(t, filepath.Join("/build", "chunks"), dir)

	inside := filepath.Join(dir, "entry.js")
	assert.True(t, r.ShouldRefresh(inside, Write))
	assert.True(t, r.ShouldRefresh(inside, Create))
	assert.True(t, r.ShouldRefresh(inside, Remove))
	assert.False(t, r.ShouldRefresh(inside, Chmod))
	assert.False(t, r.ShouldRefresh("/elsewhere/entry.js", Write))
}

func TestDirectoryRefresherCustomOps(t *testing.T) {
	r := &DirectoryRefresher{}
	dir := r.WatchDirectory("/build", "chunks")
	r.WatchFileSystemOps(Chmod)

	inside := filepath.Join(dir, "entry.js")
	assert.True(t, r.ShouldRefresh(inside, Chmod))
	assert.False(t, r.ShouldRefresh(inside, Write))
}
