package compact

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale canonicalizes a locale identifier: trimmed, hyphenated,
// with BCP 47 casing when the tag parses ("PT_br" becomes "pt-BR").
func normalizeLocale(locale string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if cleaned == "" {
		return ""
	}
	if tag, err := language.Parse(cleaned); err == nil {
		if value := tag.String(); value != "" && value != "und" {
			return value
		}
	}
	return cleaned
}

// localeParent returns the next-less-specific identifier, stripping the
// least significant subtag. Tags x/text understands follow its parent
// relation; anything else falls back to cutting at the last hyphen.
// The empty string marks the end of the chain.
func localeParent(locale string) string {
	if locale == "" || locale == rootLocale {
		return ""
	}

	if tag, err := language.Parse(locale); err == nil {
		parent := tag.Parent()
		if parent != language.Und {
			if value := parent.String(); value != "" && value != "und" {
				return value
			}
		}
		return ""
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return ""
}
