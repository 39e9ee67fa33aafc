// Package prefs persists the user-facing preferences (theme, display
// currency, UI language) as scalar strings in the key-value store. Each
// value is validated against its closed enumeration on load; anything
// unrecognized is ignored and the default applies.
package prefs

import (
	"github.com/auditdesk/auditdesk/internal/plugins/currency"
	"github.com/auditdesk/auditdesk/internal/plugins/i18n"
)

// Theme identifies the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme applies when no valid theme has been stored.
const DefaultTheme = ThemeLight

// DefaultCurrency applies when no valid currency has been stored.
const DefaultCurrency = currency.USD

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Preferences is the resolved preference set returned to clients. Every
// field always holds a valid value; defaults fill any gap.
type Preferences struct {
	Theme    Theme         `json:"theme"`
	Currency currency.Code `json:"currency"`
	Language i18n.Language `json:"language"`
}
