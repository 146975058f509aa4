package engine

import "sort"

// Localization is one per-language title/description pair in the shape the
// hosting backend's localizations map expects, keyed by platform code.
type Localization struct {
	Title       string
	Description string
}

// Skip reasons for languages excluded from the localizations map.
const (
	SkipNoData      = "no data"
	SkipUnsupported = "unsupported"
)

// Skip records one excluded language and why.
type Skip struct {
	Lang   string // canonical code, as it appears in the document
	Reason string
}

// BuildLocalizations filters and remaps a metadata document into the
// localizations map for an upload or update request. It must run before every
// request that forwards localizations: one unsupported code would make the
// backend reject the whole request.
//
// Pure function of its inputs: the default key is skipped, entries missing a
// title or description are skipped ("no data"), codes are remapped to platform
// space, and anything outside the supported set is skipped ("unsupported").
func BuildLocalizations(doc MetadataDocument, supported map[string]bool) (map[string]Localization, []Skip) {
	locs := make(map[string]Localization)
	var skipped []Skip

	// Sorted keys keep the skip list deterministic.
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, lang := range keys {
		if lang == KeyDefault {
			continue
		}
		entry := doc[lang]
		if entry.Title == "" || entry.Description == "" {
			IncrLocalizationSkips()
			skipped = append(skipped, Skip{Lang: lang, Reason: SkipNoData})
			continue
		}
		platform := PlatformCode(lang)
		if !supported[platform] {
			IncrLocalizationSkips()
			skipped = append(skipped, Skip{Lang: lang, Reason: SkipUnsupported})
			continue
		}
		locs[platform] = Localization{Title: entry.Title, Description: entry.Description}
	}
	return locs, skipped
}
