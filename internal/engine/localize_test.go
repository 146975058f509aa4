package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildLocalizationsSkipsDefaultKey(t *testing.T) {
	doc := MetadataDocument{
		KeyDefault: {Title: "t", Description: "d", Language: "ko"},
		"en":       {Title: "Title", Description: "Desc"},
	}

	locs, skips := BuildLocalizations(doc, map[string]bool{"en": true})
	require.Empty(t, skips)
	require.Len(t, locs, 1)
	require.NotContains(t, locs, KeyDefault)
}

func TestBuildLocalizationsNoData(t *testing.T) {
	doc := MetadataDocument{
		KeyDefault: {Title: "t", Description: "d"},
		"en":       {Title: "Title"},              // missing description
		"ja":       {Description: "説明"},           // missing title
		"fr":       {Title: "Titre", Description: "Desc"},
	}
	supported := map[string]bool{"en": true, "ja": true, "fr": true}

	locs, skips := BuildLocalizations(doc, supported)
	require.Len(t, locs, 1)
	require.Contains(t, locs, "fr")
	require.Equal(t, []Skip{
		{Lang: "en", Reason: SkipNoData},
		{Lang: "ja", Reason: SkipNoData},
	}, skips)
}

func TestBuildLocalizationsRemapAndUnsupported(t *testing.T) {
	doc := MetadataDocument{
		KeyDefault: {Title: "t", Description: "d"},
		"zh-CN":    {Title: "标题", Description: "说明"},
		"iw":       {Title: "כותרת", Description: "תיאור"},
		"cy":       {Title: "Teitl", Description: "Disgrifiad"},
	}
	supported := map[string]bool{"zh-Hans": true, "he": true}

	locs, skips := BuildLocalizations(doc, supported)

	// Dialect codes land under their platform aliases.
	require.Contains(t, locs, "zh-Hans")
	require.Contains(t, locs, "he")
	require.NotContains(t, locs, "zh-CN")
	require.NotContains(t, locs, "iw")
	require.Equal(t, []Skip{{Lang: "cy", Reason: SkipUnsupported}}, skips)

	// Every emitted key is in the supported set.
	for code := range locs {
		require.True(t, supported[code], "unexpected key %q", code)
	}
}

func TestBuildLocalizationsIdempotent(t *testing.T) {
	doc := MetadataDocument{
		KeyDefault: {Title: "t", Description: "d"},
		"en":       {Title: "a", Description: "b"},
		"xx":       {Title: "c", Description: "e"},
	}
	supported := map[string]bool{"en": true}

	first, firstSkips := BuildLocalizations(doc, supported)
	second, secondSkips := BuildLocalizations(doc, supported)
	require.Equal(t, first, second)
	require.Equal(t, firstSkips, secondSkips)
}

func TestBuildLocalizationsEmptyDocument(t *testing.T) {
	locs, skips := BuildLocalizations(MetadataDocument{}, FallbackSupported())
	require.Empty(t, locs)
	require.Empty(t, skips)
}

func TestFormatSkips(t *testing.T) {
	out := FormatSkips([]Skip{
		{Lang: "cy", Reason: SkipUnsupported},
		{Lang: "en", Reason: SkipNoData},
	})
	require.Equal(t, []string{"cy (unsupported)", "en (no data)"}, out)
	require.Nil(t, FormatSkips(nil))
}
