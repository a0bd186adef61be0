// Package i18n supplies user-facing strings keyed by language code.
package i18n

// DefaultLang is used when no language is configured or a key is missing.
const DefaultLang = "en"

type catalog map[string]string

var catalogs = map[string]catalog{
	"en": {
		"title":               "recite",
		"editing.hint":        "Enter the text you want to memorize, then start practicing.",
		"practicing.hint":     "Type the text from memory.",
		"label.words":         "Words",
		"label.accuracy":      "Accuracy",
		"label.wpm":           "WPM",
		"label.time":          "Time",
		"option.ignore-case":  "ignore case",
		"option.ignore-punct": "ignore punctuation",
		"option.mask":         "mask words",
		"option.lang":         "language",
		"option.on":           "on",
		"option.off":          "off",
		"help.start":          "start",
		"help.reveal":         "reveal",
		"help.reset":          "reset",
		"help.quit":           "quit",
		"help.case":           "case",
		"help.punct":          "punctuation",
		"help.mask":           "mask",
		"help.lang":           "language",
	},
	"es": {
		"title":               "recite",
		"editing.hint":        "Escribe el texto que quieres memorizar y empieza a practicar.",
		"practicing.hint":     "Escribe el texto de memoria.",
		"label.words":         "Palabras",
		"label.accuracy":      "Precisión",
		"label.wpm":           "PPM",
		"label.time":          "Tiempo",
		"option.ignore-case":  "ignorar mayúsculas",
		"option.ignore-punct": "ignorar puntuación",
		"option.mask":         "ocultar palabras",
		"option.lang":         "idioma",
		"option.on":           "sí",
		"option.off":          "no",
		"help.start":          "empezar",
		"help.reveal":         "revelar",
		"help.reset":          "reiniciar",
		"help.quit":           "salir",
		"help.case":           "mayúsculas",
		"help.punct":          "puntuación",
		"help.mask":           "ocultar",
		"help.lang":           "idioma",
	},
	"ru": {
		"title":               "recite",
		"editing.hint":        "Введите текст для запоминания и начните тренировку.",
		"practicing.hint":     "Наберите текст по памяти.",
		"label.words":         "Слова",
		"label.accuracy":      "Точность",
		"label.wpm":           "Слов/мин",
		"label.time":          "Время",
		"option.ignore-case":  "без учёта регистра",
		"option.ignore-punct": "без пунктуации",
		"option.mask":         "скрывать слова",
		"option.lang":         "язык",
		"option.on":           "вкл",
		"option.off":          "выкл",
		"help.start":          "старт",
		"help.reveal":         "показать",
		"help.reset":          "сброс",
		"help.quit":           "выход",
		"help.case":           "регистр",
		"help.punct":          "пунктуация",
		"help.mask":           "маска",
		"help.lang":           "язык",
	},
}

var defaultReferences = map[string]string{
	"en": "The quick brown fox jumps over the lazy dog.",
	"es": "El veloz murciélago hindú comía feliz cardillo y kiwi.",
	"ru": "Съешь же ещё этих мягких французских булок, да выпей чаю.",
}

// Languages returns the supported language codes in display order.
func Languages() []string {
	return []string{"en", "es", "ru"}
}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// T returns the string for key in lang, falling back to English, then to the
// key itself. It never fails: the core consumers rely on always getting text.
func T(lang, key string) string {
	if c, ok := catalogs[lang]; ok {
		if s, ok := c[key]; ok {
			return s
		}
	}
	if s, ok := catalogs[DefaultLang][key]; ok {
		return s
	}
	return key
}

// DefaultReference returns the built-in starter sentence for lang.
func DefaultReference(lang string) string {
	if s, ok := defaultReferences[lang]; ok {
		return s
	}
	return defaultReferences[DefaultLang]
}
