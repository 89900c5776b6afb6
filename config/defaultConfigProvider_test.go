package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/pagegen/common/maps"
)

func TestDefaultConfigProvider(t *testing.T) {
	t.Run("Set and Get", func(t *testing.T) {
		cfg := New()
		var k string
		var v any

		k, v = "foo", "bar"
		cfg.Set(k, v)
		assert.Equal(t, v, cfg.Get(k))
		assert.Equal(t, v, cfg.Get("FOO"))

		k, v = "foo", maps.Params{"bar": "baz"}
		cfg.Set(k, v)
		assert.Equal(t, v, cfg.Get(k))
		assert.Equal(t, "baz", cfg.Get("foo.bar"))
	})

	t.Run("Set nested", func(t *testing.T) {
		cfg := New()
		cfg.Set("markup.goldmark.unsafe", true)
		assert.True(t, cfg.GetBool("markup.goldmark.unsafe"))
		assert.True(t, cfg.IsSet("markup.goldmark"))
		assert.Equal(t, maps.Params{"unsafe": true}, cfg.GetParams("markup.goldmark"))
	})

	t.Run("Set merges maps", func(t *testing.T) {
		cfg := New()
		cfg.Set("markup", map[string]any{"goldmark": map[string]any{"unsafe": false}})
		cfg.Set("markup", map[string]any{"highlight": map[string]any{"style": "monokai"}})
		assert.False(t, cfg.GetBool("markup.goldmark.unsafe"))
		assert.Equal(t, "monokai", cfg.GetString("markup.highlight.style"))
	})

	t.Run("Set root", func(t *testing.T) {
		cfg := New()
		cfg.Set("", map[string]any{"Title": "My Site", "Tags": false})
		assert.Equal(t, "My Site", cfg.GetString("title"))
		assert.False(t, cfg.GetBool("tags"))
		assert.True(t, cfg.IsSet("tags"))
	})

	t.Run("SetDefaults", func(t *testing.T) {
		cfg := New()
		cfg.Set("publishDir", "out")
		cfg.SetDefaults(maps.Params{"publishdir": "public", "contentdir": "content"})
		assert.Equal(t, "out", cfg.GetString("publishdir"))
		assert.Equal(t, "content", cfg.GetString("contentDir"))
	})

	t.Run("Typed getters", func(t *testing.T) {
		cfg := NewFrom(maps.Params{
			"int":    "32",
			"bool":   "true",
			"slice":  []any{"a", "b"},
			"single": "c",
			"dur":    "2s",
		})
		assert.Equal(t, 32, cfg.GetInt("int"))
		assert.True(t, cfg.GetBool("bool"))
		assert.Equal(t, []string{"a", "b"}, cfg.GetStringSlice("slice"))
		assert.Equal(t, []string{"c"}, GetStringSlicePreserveString(cfg, "single"))
		assert.Equal(t, "2s", cfg.GetDuration("dur").String())
	})

	t.Run("Not set", func(t *testing.T) {
		cfg := New()
		assert.False(t, cfg.IsSet("a.b.c"))
		assert.Nil(t, cfg.Get("a.b.c"))
		assert.Nil(t, cfg.GetParams("a"))
		assert.Equal(t, "", cfg.GetString("a"))
	})

	t.Run("Key through scalar", func(t *testing.T) {
		cfg := New()
		cfg.Set("a", "b")
		require.Nil(t, cfg.Get("a.b"))
		assert.False(t, cfg.IsSet("a.b"))
	})
}

func TestCompositeConfig(t *testing.T) {
	base := New()
	base.Set("publishdir", "public")
	base.Set("tags", true)

	layer := New()
	layer.Set("tags", false)

	cfg := NewCompositeConfig(base, layer)
	assert.Equal(t, "public", cfg.GetString("publishdir"))
	assert.False(t, cfg.GetBool("tags"))
	assert.True(t, cfg.IsSet("tags"))
	assert.False(t, cfg.IsSet("nope"))

	cfg.Set("publishdir", "out")
	assert.Equal(t, "out", cfg.GetString("publishdir"))
	assert.Equal(t, "public", base.GetString("publishdir"))
}
