package assets

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/render"
)

func TestEmbeddedShadersResolve(t *testing.T) {
	lib := Embedded(nil)
	for _, name := range []string{render.SpriteShader, render.BackgroundShader} {
		src, err := lib.Shader(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "func Fragment")
		assert.NotContains(t, string(src), includeDirective)
	}
	bg, _ := lib.Shader(render.BackgroundShader)
	assert.Contains(t, string(bg), "func starLayer")
}

func TestIncludeResolution(t *testing.T) {
	fsys := fstest.MapFS{
		"main.kage":     {Data: []byte("package main\n//#include \"lib/a.kage\"\nfunc Fragment() {}\n")},
		"lib/a.kage":    {Data: []byte("// a\n  //#include \"b.kage\"\n")},
		"lib/b.kage":    {Data: []byte("func b() {}\n")},
		"loop.kage":     {Data: []byte("//#include \"loop2.kage\"\n")},
		"loop2.kage":    {Data: []byte("//#include \"loop.kage\"\n")},
		"missing.kage":  {Data: []byte("//#include \"nope.kage\"\n")},
		"escape.kage":   {Data: []byte("//#include \"../secret.kage\"\n")},
		"empty.kage":    {Data: []byte("  \n")},
		"binary.kage":   {Data: []byte{0xff, 0xfe, 0x00}},
		"notquite.kage": {Data: []byte("//#include lib/b.kage\n")},
	}
	lib := NewShaderLibrary(fsys, "test", nil)

	src, err := lib.Shader("main")
	require.NoError(t, err)
	assert.Equal(t, "package main\n// a\nfunc b() {}\nfunc Fragment() {}\n", string(src))

	_, err = lib.Shader("loop")
	assert.ErrorIs(t, err, ErrIncludeCycle)

	_, err = lib.Shader("missing")
	assert.ErrorIs(t, err, render.ErrShaderNotFound)
	assert.ErrorContains(t, err, "nope.kage")

	_, err = lib.Shader("absent")
	assert.ErrorIs(t, err, render.ErrShaderNotFound)

	_, err = lib.Shader("escape")
	assert.ErrorIs(t, err, ErrInvalidShader)
	_, err = lib.Shader("empty")
	assert.ErrorIs(t, err, ErrInvalidShader)
	_, err = lib.Shader("binary")
	assert.ErrorIs(t, err, ErrInvalidShader)

	// без кавычек строка остаётся обычным комментарием
	src, err = lib.Shader("notquite")
	require.NoError(t, err)
	assert.Equal(t, "//#include lib/b.kage\n", string(src))
}

func TestCacheAndReload(t *testing.T) {
	fsys := fstest.MapFS{
		"a.kage":   {Data: []byte("func a() {}\n")},
		"b.kage":   {Data: []byte("func b() {}\n")},
		"inc.kage": {Data: []byte("// v1\n")},
		"c.kage":   {Data: []byte("//#include \"inc.kage\"\n")},
	}
	lib := NewShaderLibrary(fsys, "test", nil)
	require.NoError(t, lib.Preload(context.Background(), "a", "b", "c"))

	before, ok := lib.Digest("c")
	require.True(t, ok)

	fsys["b.kage"] = &fstest.MapFile{Data: []byte("func b2() {}\n")}
	src, err := lib.Shader("b")
	require.NoError(t, err)
	assert.Equal(t, "func b() {}\n", string(src), "served from cache until reload")

	fsys["inc.kage"] = &fstest.MapFile{Data: []byte("// v2\n")}
	changed, err := lib.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, changed)

	after, _ := lib.Digest("c")
	assert.NotEqual(t, before, after)
	src, _ = lib.Shader("b")
	assert.True(t, strings.Contains(string(src), "b2"))
}

func TestReloadKeepsOldOnError(t *testing.T) {
	fsys := fstest.MapFS{"a.kage": {Data: []byte("func a() {}\n")}}
	lib := NewShaderLibrary(fsys, "test", nil)
	_, err := lib.Shader("a")
	require.NoError(t, err)

	delete(fsys, "a.kage")
	_, err = lib.Reload(context.Background())
	assert.ErrorIs(t, err, render.ErrShaderNotFound)

	src, err := lib.Shader("a")
	require.NoError(t, err)
	assert.Equal(t, "func a() {}\n", string(src))
}

func TestPreloadFailsFast(t *testing.T) {
	lib := NewShaderLibrary(fstest.MapFS{}, "test", nil)
	err := lib.Preload(context.Background(), "x", "y")
	assert.ErrorIs(t, err, render.ErrShaderNotFound)
}

func TestSpriteGlyphs(t *testing.T) {
	g := SpriteGlyphs()
	assert.Equal(t, render.GlyphShip, g.Lookup(render.Cell{47, 1}))
	assert.Equal(t, render.GlyphBullet, g.Lookup(cellOf(config.ProjectileCell)))
	assert.Equal(t, render.GlyphCrab, g.Lookup(render.Cell{46, 2}))
	assert.Equal(t, render.GlyphNone, g.Lookup(render.Cell{0, 0}))
}
