package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePreset(t *testing.T) {
	t.Run("known preset", func(t *testing.T) {
		p := ResolvePreset("golden-hour")
		assert.Equal(t, "golden-hour", p.Name)
		assert.Contains(t, p.Description, "golden-hour sunlight")
	})

	t.Run("none falls back to default", func(t *testing.T) {
		p := ResolvePreset(None)
		assert.Equal(t, "natural-light", p.Name)
	})

	t.Run("unknown falls back to default", func(t *testing.T) {
		p := ResolvePreset("daguerreotype")
		assert.Equal(t, "natural-light", p.Name)
	})

	t.Run("empty falls back to default", func(t *testing.T) {
		p := ResolvePreset("")
		assert.Equal(t, "natural-light", p.Name)
	})
}

func TestPresets(t *testing.T) {
	list := Presets()
	require.NotEmpty(t, list)

	// every preset resolves to itself
	for _, p := range list {
		assert.Equal(t, p, ResolvePreset(p.Name))
		assert.NotEmpty(t, p.Description)
	}

	// returned slice is a copy, mutating it must not affect the catalog
	list[0].Name = "mutated"
	assert.Equal(t, "natural-light", Presets()[0].Name)
}
