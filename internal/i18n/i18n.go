// Package i18n holds the immutable translation table for the two supported
// report languages. The table is fixed at compile time and indexed by
// (language, key); unknown languages fall back to English.
package i18n

// Supported language codes.
const (
	LangEN = "en"
	LangUK = "uk"
)

var translations = map[string]map[string]string{
	LangEN: {
		"language_name":      "English",
		"error_rate_limited": "Rate limit exceeded. Please try again in a moment.",
		"error_unavailable":  "Service temporarily unavailable.",
		"error_generic":      "Analysis failed. Please try again.",
		"error_not_found":    "Report not found.",
		"error_validation":   "Invalid request.",
	},
	LangUK: {
		"language_name":      "Ukrainian",
		"error_rate_limited": "Перевищено ліміт запитів. Спробуйте ще раз за хвилину.",
		"error_unavailable":  "Сервіс тимчасово недоступний.",
		"error_generic":      "Не вдалося проаналізувати ідею. Спробуйте ще раз.",
		"error_not_found":    "Звіт не знайдено.",
		"error_validation":   "Некоректний запит.",
	},
}

// Normalize maps an arbitrary language value to a supported code.
func Normalize(lang string) string {
	if lang == LangUK {
		return LangUK
	}
	return LangEN
}

// T returns the translation for key in the given language. Unknown keys return
// the key itself so a missing entry is visible rather than silent.
func T(lang, key string) string {
	table, ok := translations[Normalize(lang)]
	if !ok {
		table = translations[LangEN]
	}
	if val, ok := table[key]; ok {
		return val
	}
	return key
}

// LanguageName returns the English display name of the response language, as
// embedded in the model prompt ("Respond ONLY in Ukrainian").
func LanguageName(lang string) string {
	return translations[Normalize(lang)]["language_name"]
}
