// Package i18n resolves user-facing strings for the supported locales.
//
// Lookup never fails: a missing key falls back through a derived
// "<key>expense" form, then substring containment against known keys,
// and finally returns the key itself unchanged.
package i18n

import (
	"sort"
	"strings"
)

const (
	English Locale = "en"
	Tamil   Locale = "ta"

	// DefaultLocale is the fallback for strings missing in the
	// requested locale.
	DefaultLocale = English
)

// Locale is the active display language code.
type Locale string

func (l Locale) Valid() bool {
	return l == English || l == Tamil
}

// ParseLocale normalizes a stored or user-supplied locale code, falling
// back to the default for unknown values.
func ParseLocale(s string) Locale {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return DefaultLocale
	}
	return l
}

// T resolves key for the given locale, substituting {name} placeholders
// from replacements. Unresolved placeholders stay literal and an
// unresolved key is returned as-is.
func T(key string, locale Locale, replacements map[string]string) string {
	set, ok := translations[key]
	if !ok {
		set, ok = fuzzyLookup(key)
	}
	if !ok {
		return key
	}

	s, ok := set[locale]
	if !ok || s == "" {
		s = set[DefaultLocale]
	}
	for name, value := range replacements {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

// fuzzyLookup recovers short keys: first the derived "<key>expense" form
// ("daily" resolving via "dailyExpense"), then substring containment in
// either direction. Candidates are probed in sorted order so the match
// is deterministic.
func fuzzyLookup(key string) (map[Locale]string, bool) {
	lower := strings.ToLower(key)

	derived := lower + "expense"
	for k, set := range translations {
		if strings.ToLower(k) == derived {
			return set, true
		}
	}

	keys := make([]string, 0, len(translations))
	for k := range translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kl := strings.ToLower(k)
		if strings.Contains(kl, lower) || strings.Contains(lower, kl) {
			return translations[k], true
		}
	}
	return nil, false
}
