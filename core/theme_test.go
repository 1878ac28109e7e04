package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTags = []StyleTag{
	TagText, TagTabBar, TagActiveTab, TagStatusBar, TagKeyword,
	TagComment, TagString, TagNumber, TagSpecial, TagSearchHighlight,
}

func TestThemeRegistrationOrder(t *testing.T) {
	th := NewTheme()
	assert.Equal(t, []string{"default", "dark", "light"}, th.Names())
	assert.Equal(t, "default", th.Name())
}

func TestThemeCycles(t *testing.T) {
	th := NewTheme()
	th.Next()
	assert.Equal(t, "dark", th.Name())
	th.Next()
	assert.Equal(t, "light", th.Name())
	th.Next()
	assert.Equal(t, "default", th.Name())
}

func TestThemeSet(t *testing.T) {
	th := NewTheme()
	th.Set("light")
	assert.Equal(t, "light", th.Name())

	// Unknown names leave the selection unchanged.
	th.Set("solarized")
	assert.Equal(t, "light", th.Name())
}

func TestThemePalettesAreComplete(t *testing.T) {
	th := NewTheme()
	for _, name := range th.Names() {
		th.Set(name)
		for _, tag := range allTags {
			pair := th.Color(tag)
			require.NotEmpty(t, pair.FG, "theme %s tag %d", name, tag)
			require.NotEmpty(t, pair.BG, "theme %s tag %d", name, tag)
		}
	}
}

func TestThemeUnknownTagFailsClosed(t *testing.T) {
	th := NewTheme()
	assert.Equal(t, th.Color(TagText), th.Color(StyleTag(999)))
}
