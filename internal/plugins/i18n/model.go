// Package i18n provides the translation lookup service: a static two-level
// dictionary (language -> key -> string) with a mutable current selection.
// Lookups never fail -- a missing key falls back to the default language and
// finally to the key string itself. Selecting a new language notifies all
// subscribers synchronously, once, at selection time.
package i18n

// Language identifies a supported UI language.
type Language string

const (
	// English is the default language and the fallback for missing keys.
	English Language = "en"

	// French is the second supported language.
	French Language = "fr"
)

// DefaultLanguage is the selection used at startup and the fallback tier
// for missing translations.
const DefaultLanguage = English

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := translations[l]
	return ok
}

// Info describes a supported language for the settings screen.
type Info struct {
	Code Language `json:"code"`
	Name string   `json:"name"`
	Flag string   `json:"flag"`
}

// languageOrder fixes the enumeration order of Languages.
var languageOrder = []Language{English, French}

var languages = map[Language]Info{
	English: {Code: English, Name: "English", Flag: "🇺🇸"},
	French:  {Code: French, Name: "Français", Flag: "🇫🇷"},
}
