package production

// Locale selects which localized name is shown for catalog records
type Locale string

const (
	// LocaleJA shows Japanese names
	LocaleJA Locale = "ja"

	// LocaleEN shows English names
	LocaleEN Locale = "en"
)

// ParseLocale maps a language tag such as "ja-JP" or "en" to a supported locale.
// Anything that does not start with "ja" falls back to English.
func ParseLocale(tag string) Locale {
	if len(tag) >= 2 && tag[:2] == "ja" {
		return LocaleJA
	}
	return LocaleEN
}

// Item represents a good that is produced or consumed by recipes.
// Seed items are raw materials with no production chain of their own.
type Item struct {
	ID        string
	NameJP    string
	NameEN    string
	SpriteCol int
	SpriteRow int
	IsSeed    bool
}

// DisplayName returns the item name for the locale, or the item ID when that name is empty
func (i Item) DisplayName(locale Locale) string {
	name := i.NameEN
	if locale == LocaleJA {
		name = i.NameJP
	}
	if name == "" {
		return i.ID
	}
	return name
}

// PickerLabel returns the "日本語名 (English name)" label used by item pickers
func (i Item) PickerLabel() string {
	return i.DisplayName(LocaleJA) + " (" + i.DisplayName(LocaleEN) + ")"
}
