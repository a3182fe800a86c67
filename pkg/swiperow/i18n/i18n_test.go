package i18n

import (
	"testing"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocalizedLabels(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)
	assert.ElementsMatch(t, []language.Tag{language.English, language.German}, bundle.Languages())

	en := bundle.Localizer("en-US")
	assert.Equal(t, "Delete", en.ActionLabel(ActionDelete))
	assert.Equal(t, "Swipe right to Archive", en.SideHint(swiperow.SideLeft, ActionArchive))
	assert.Equal(t, "Swipe left to Delete", en.SideHint(swiperow.SideRight, ActionDelete))
	assert.Equal(t, "1 row open", en.RowsOpen(1))
	assert.Equal(t, "3 rows open", en.RowsOpen(3))

	de := bundle.Localizer("de-DE,de;q=0.9", "en")
	assert.Equal(t, "Löschen", de.ActionLabel(ActionDelete))
	assert.Equal(t, "Nach rechts wischen: Archivieren", de.SideHint(swiperow.SideLeft, ActionArchive))
	assert.Equal(t, "2 Zeilen offen", de.RowsOpen(2))
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	fr := bundle.Localizer("fr")
	assert.Equal(t, "Flag", fr.ActionLabel(ActionFlag))
}

func TestMissingMessageReturnsID(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	assert.Equal(t, "ActionSnooze", bundle.Localizer("en").ActionLabel(Action("ActionSnooze")))
}
