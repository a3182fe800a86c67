// Package i18n localizes the labels and hints shown on swipe rows.
package i18n

import (
	"embed"
	"path"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Action identifies a row action with a localized label.
type Action string

const (
	ActionArchive Action = "ActionArchive"
	ActionDelete  Action = "ActionDelete"
	ActionFlag    Action = "ActionFlag"
)

// Bundle holds the embedded message catalogs.
type Bundle struct {
	bundle *goi18n.Bundle
}

// NewBundle loads every embedded catalog with English as the fallback.
func NewBundle() (*Bundle, error) {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, swiperow.NewInfrastructureError("load_locales", err)
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, swiperow.NewInfrastructureError("load_locales", err)
		}
		if _, err := b.ParseMessageFileBytes(data, name); err != nil {
			return nil, swiperow.NewInfrastructureError("parse_locale", err)
		}
	}

	return &Bundle{bundle: b}, nil
}

// Languages lists the languages with a catalog.
func (b *Bundle) Languages() []language.Tag {
	return b.bundle.LanguageTags()
}

// Localizer picks messages for the first supported of the given language
// preferences (tags or Accept-Language strings).
type Localizer struct {
	localizer *goi18n.Localizer
}

// Localizer creates a Localizer for the given preferences.
func (b *Bundle) Localizer(langs ...string) *Localizer {
	return &Localizer{localizer: goi18n.NewLocalizer(b.bundle, langs...)}
}

// ActionLabel returns the label for an action, or the action ID when no
// catalog has it.
func (l *Localizer) ActionLabel(action Action) string {
	return l.localize(string(action), nil, nil)
}

// SideHint describes how to reveal action on side, e.g. "Swipe right to Archive".
// The left view is revealed by swiping right.
func (l *Localizer) SideHint(side swiperow.Side, action Action) string {
	direction := "DirectionLeft"
	if side == swiperow.SideLeft {
		direction = "DirectionRight"
	}

	return l.localize("SwipeHint", map[string]string{
		"Direction": l.localize(direction, nil, nil),
		"Action":    l.ActionLabel(action),
	}, nil)
}

// RowsOpen returns a pluralized count of open rows.
func (l *Localizer) RowsOpen(count int) string {
	return l.localize("RowsOpen", map[string]int{"Count": count}, count)
}

func (l *Localizer) localize(id string, data any, plural any) string {
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		PluralCount:  plural,
	})
	if err != nil {
		swiperow.GetLogger().Debug("Missing translation", "id", id, "error", err)
		return id
	}
	return msg
}
