package render

var languageNames = map[string]string{
	"bn": "Bangla",
	"hi": "Hindi",
	"ur": "Urdu",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
}

// LanguageName returns the English name of a BCP 47 primary language code,
// or the code itself when unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}
