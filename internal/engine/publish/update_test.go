package publish

import (
	"testing"

	"github.com/stretchr/testify/require"
	youtube "google.golang.org/api/youtube/v3"

	"github.com/anatolykoptev/go_publish/internal/engine"
)

func TestBuildUpdateBodyPrefersDocumentDefault(t *testing.T) {
	current := &youtube.Video{Snippet: &youtube.VideoSnippet{
		Title:           "old title",
		Description:     "old desc",
		DefaultLanguage: "en",
		CategoryId:      "27",
	}}
	doc := engine.MetadataDocument{
		engine.KeyDefault: {Title: "new title", Description: "new desc", Language: "ko"},
	}
	locs := map[string]engine.Localization{
		"en": {Title: "t", Description: "d"},
	}

	body := buildUpdateBody(current, "vid1", doc, locs)

	require.Equal(t, "vid1", body.Id)
	require.Equal(t, "new title", body.Snippet.Title)
	require.Equal(t, "new desc", body.Snippet.Description)
	require.Equal(t, "ko", body.Snippet.DefaultLanguage)
	require.Equal(t, "27", body.Snippet.CategoryId)
	require.Equal(t, "t", body.Localizations["en"].Title)
}

func TestBuildUpdateBodyKeepsCurrentSnippetWhenDocEmpty(t *testing.T) {
	current := &youtube.Video{Snippet: &youtube.VideoSnippet{
		Title:           "kept title",
		Description:     "kept desc",
		DefaultLanguage: "ja",
	}}
	doc := engine.MetadataDocument{engine.KeyDefault: {}}

	body := buildUpdateBody(current, "vid2", doc, nil)

	require.Equal(t, "kept title", body.Snippet.Title)
	require.Equal(t, "kept desc", body.Snippet.Description)
	require.Equal(t, "ja", body.Snippet.DefaultLanguage)
	require.Equal(t, defaultCategoryID, body.Snippet.CategoryId)
	require.Empty(t, body.Localizations)
}

func TestBuildUpdateBodyNilCurrentSnippet(t *testing.T) {
	doc := engine.MetadataDocument{
		engine.KeyDefault: {Title: "t", Description: "d", Language: "en"},
	}

	body := buildUpdateBody(&youtube.Video{}, "vid3", doc, nil)

	require.Equal(t, "t", body.Snippet.Title)
	require.Equal(t, "en", body.Snippet.DefaultLanguage)
}
