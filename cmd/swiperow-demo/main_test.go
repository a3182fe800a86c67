package main

import (
	"testing"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow/i18n"
	"github.com/stretchr/testify/assert"
)

func TestLanguageTag(t *testing.T) {
	assert.Equal(t, "de-DE", languageTag("de_DE.UTF-8"))
	assert.Equal(t, "en", languageTag("en"))
	assert.Equal(t, "sr-RS", languageTag("sr_RS@latin"))
	assert.Equal(t, "", languageTag(""))
}

func TestRowConfigsHaveIconsAndColors(t *testing.T) {
	configs := rowConfigs(6)
	assert.Len(t, configs, 6)
	assert.Equal(t, i18n.ActionFlag, configs[2].left)
	assert.Equal(t, i18n.ActionArchive, configs[0].left)

	for _, cfg := range configs {
		for _, action := range []i18n.Action{cfg.left, cfg.right} {
			assert.Contains(t, actionIcons, action)
			assert.Contains(t, actionColors, action)
		}
	}
}

func TestLoadThemeFontOverride(t *testing.T) {
	theme, err := loadTheme("dark", "label.ttf")
	assert.NoError(t, err)
	assert.Equal(t, "label.ttf", theme.FontPath)

	theme, err = loadTheme("", "")
	assert.NoError(t, err)
	assert.Empty(t, theme.FontPath)
}
