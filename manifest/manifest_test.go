package manifest

import (
	"testing"

	stats "github.com/lyft/gostats"
	"github.com/stretchr/testify/require"

	"github.com/bundlekit/devsurface/chunk"
	"github.com/bundlekit/devsurface/surface"
)

var nullScope = stats.NewStore(stats.NewNullSink(), false)

func TestManifestTracksChunksAndLists(t *testing.T) {
	assert := require.New(t)

	m := New()
	m.LoadChunk(chunk.Registration{Path: "b.js", Modules: []chunk.ModuleID{"b"}})
	m.LoadChunk(chunk.Registration{Path: "a.js", Modules: []chunk.ModuleID{"a"}})
	m.LoadChunkList(chunk.List{Name: "main", Chunks: []chunk.Path{"a.js", "b.js"}})

	assert.Equal(2, m.Len())
	assert.Equal([]chunk.Path{"a.js", "b.js"}, m.Paths())
	assert.Equal([]string{"main"}, m.ListNames())

	r, ok := m.Chunk("a.js")
	assert.True(ok)
	assert.Equal([]chunk.ModuleID{"a"}, r.Modules)

	_, ok = m.Chunk("c.js")
	assert.False(ok)
	assert.True(m.Has("b.js"))

	l, ok := m.List("main")
	assert.True(ok)
	assert.Equal([]chunk.Path{"a.js", "b.js"}, l.Chunks)
}

func TestManifestReRegistrationReplaces(t *testing.T) {
	assert := require.New(t)

	m := New()
	m.LoadChunk(chunk.Registration{Path: "a.js", Source: []byte("v1")})
	m.LoadChunk(chunk.Registration{Path: "a.js", Source: []byte("v2")})

	assert.Equal(1, m.Len())
	r, _ := m.Chunk("a.js")
	assert.Equal("v2", string(r.Source))
}

func TestManifestMissing(t *testing.T) {
	assert := require.New(t)

	m := New()
	m.LoadChunkList(chunk.List{Name: "main", Chunks: []chunk.Path{"a.js", "b.js"}})
	assert.Equal([]chunk.Path{"a.js", "b.js"}, m.Missing("main"))

	m.LoadChunk(chunk.Registration{Path: "a.js"})
	assert.Equal([]chunk.Path{"b.js"}, m.Missing("main"))

	m.LoadChunk(chunk.Registration{Path: "b.js"})
	assert.Empty(m.Missing("main"))

	assert.Nil(m.Missing("no-such-list"))
}

func TestManifestAttachReplaysBuffer(t *testing.T) {
	assert := require.New(t)

	s := surface.New(nullScope)
	s.RegisterChunk(chunk.Registration{Path: "a.js"})
	s.RegisterChunkList(chunk.List{Name: "main", Chunks: []chunk.Path{"a.js", "b.js"}})

	m := New()
	m.AttachTo(s)

	assert.True(m.Has("a.js"))
	assert.Equal([]chunk.Path{"b.js"}, m.Missing("main"))

	s.RegisterChunk(chunk.Registration{Path: "b.js"})
	assert.Empty(m.Missing("main"))
}
