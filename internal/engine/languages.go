package engine

import "sort"

// Language catalog — static lookup data only, no logic beyond map access.
// Codes are ISO 639-1 in the canonical space used by the translation backend
// and the metadata files. YouTube's localization API uses a slightly different
// code space for a handful of languages; see platformCodes.

// Languages maps canonical language code → English display name.
// This is the set of languages YouTube metadata can be localized into.
var Languages = map[string]string{
	"af":    "Afrikaans",
	"ar":    "Arabic",
	"az":    "Azerbaijani",
	"be":    "Belarusian",
	"bg":    "Bulgarian",
	"bn":    "Bengali",
	"bs":    "Bosnian",
	"ca":    "Catalan",
	"cs":    "Czech",
	"cy":    "Welsh",
	"da":    "Danish",
	"de":    "German",
	"el":    "Greek",
	"en":    "English",
	"es":    "Spanish",
	"et":    "Estonian",
	"eu":    "Basque",
	"fa":    "Persian",
	"fi":    "Finnish",
	"fil":   "Filipino",
	"fr":    "French",
	"gl":    "Galician",
	"gu":    "Gujarati",
	"hi":    "Hindi",
	"hr":    "Croatian",
	"hu":    "Hungarian",
	"hy":    "Armenian",
	"id":    "Indonesian",
	"is":    "Icelandic",
	"it":    "Italian",
	"iw":    "Hebrew",
	"ja":    "Japanese",
	"ka":    "Georgian",
	"kk":    "Kazakh",
	"km":    "Khmer",
	"kn":    "Kannada",
	"ko":    "Korean",
	"ky":    "Kyrgyz",
	"lo":    "Lao",
	"lt":    "Lithuanian",
	"lv":    "Latvian",
	"mk":    "Macedonian",
	"ml":    "Malayalam",
	"mn":    "Mongolian",
	"mr":    "Marathi",
	"ms":    "Malay",
	"my":    "Burmese",
	"ne":    "Nepali",
	"nl":    "Dutch",
	"no":    "Norwegian",
	"pa":    "Punjabi",
	"pl":    "Polish",
	"pt":    "Portuguese",
	"ro":    "Romanian",
	"ru":    "Russian",
	"si":    "Sinhala",
	"sk":    "Slovak",
	"sl":    "Slovenian",
	"sq":    "Albanian",
	"sr":    "Serbian",
	"sv":    "Swedish",
	"sw":    "Swahili",
	"ta":    "Tamil",
	"te":    "Telugu",
	"th":    "Thai",
	"tr":    "Turkish",
	"uk":    "Ukrainian",
	"ur":    "Urdu",
	"uz":    "Uzbek",
	"vi":    "Vietnamese",
	"zh-CN": "Chinese (Simplified)",
	"zh-TW": "Chinese (Traditional)",
	"zu":    "Zulu",
}

// platformCodes maps canonical codes to the codes YouTube's localization
// API expects. Codes absent from this table are identical in both spaces.
var platformCodes = map[string]string{
	"iw":    "he", // Hebrew
	"zh-CN": "zh-Hans",
	"zh-TW": "zh-Hant",
	"fil":   "tl", // Filipino → Tagalog
}

// fallbackSupported is the supported-language set used when the live
// i18nLanguages lookup fails. Platform code space.
var fallbackSupported = map[string]bool{
	"af": true, "ar": true, "az": true, "be": true, "bg": true, "bn": true,
	"bs": true, "ca": true, "cs": true, "da": true, "de": true, "el": true,
	"en": true, "es": true, "et": true, "fa": true, "fi": true, "fr": true,
	"gu": true, "hi": true, "hr": true, "hu": true, "hy": true, "id": true,
	"is": true, "it": true, "ja": true, "ka": true, "kk": true, "km": true,
	"kn": true, "ko": true, "ky": true, "lo": true, "lt": true, "lv": true,
	"mk": true, "ml": true, "mn": true, "mr": true, "ms": true, "my": true,
	"ne": true, "nl": true, "no": true, "pa": true, "pl": true, "pt": true,
	"ro": true, "ru": true, "si": true, "sk": true, "sl": true, "sq": true,
	"sr": true, "sv": true, "sw": true, "ta": true, "te": true, "th": true,
	"tl": true, "tr": true, "uk": true, "ur": true, "uz": true, "vi": true,
	"zh-Hans": true, "zh-Hant": true, "zu": true,
}

// PlatformCode converts a canonical language code to the platform code space.
// Identity for codes the two spaces agree on.
func PlatformCode(code string) string {
	if mapped, ok := platformCodes[code]; ok {
		return mapped
	}
	return code
}

// DisplayName returns the catalog name for a code, or the code itself when unknown.
func DisplayName(code string) string {
	if name, ok := Languages[code]; ok {
		return name
	}
	return code
}

// AllLanguageCodes returns every cataloged canonical code, sorted.
func AllLanguageCodes() []string {
	codes := make([]string, 0, len(Languages))
	for code := range Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// FilterKnown splits codes into cataloged and unknown, preserving input order.
func FilterKnown(codes []string) (known, unknown []string) {
	for _, code := range codes {
		if _, ok := Languages[code]; ok {
			known = append(known, code)
		} else {
			unknown = append(unknown, code)
		}
	}
	return known, unknown
}

// FallbackSupported returns a copy of the static fallback supported-language set.
func FallbackSupported() map[string]bool {
	set := make(map[string]bool, len(fallbackSupported))
	for code := range fallbackSupported {
		set[code] = true
	}
	return set
}
