package publish

import (
	"context"
	"fmt"
	"sort"

	youtube "google.golang.org/api/youtube/v3"

	"github.com/anatolykoptev/go_publish/internal/engine"
)

// UpdateResult reports what a localization update applied and skipped.
type UpdateResult struct {
	Applied []string // platform-space codes attached, sorted
	Skipped []engine.Skip
}

// UpdateLocalizations attaches the document's translations to an existing
// video. The current snippet is fetched first so the update doesn't clobber
// title or description; the document's default entry wins when present.
// An empty reconciled set is a no-op success.
func UpdateLocalizations(ctx context.Context, svc *youtube.Service, videoID string, doc engine.MetadataDocument, supported map[string]bool) (*UpdateResult, error) {
	locs, skips := engine.BuildLocalizations(doc, supported)
	res := &UpdateResult{Skipped: skips}
	if len(locs) == 0 {
		return res, nil
	}

	list, err := svc.Videos.List([]string{"snippet", "localizations"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("localize: fetch video %s: %w", videoID, err)
	}
	if len(list.Items) == 0 {
		return nil, fmt.Errorf("localize: video not found: %s", videoID)
	}
	current := list.Items[0]

	body := buildUpdateBody(current, videoID, doc, locs)

	if _, err := svc.Videos.Update([]string{"snippet", "localizations"}, body).Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("localize: update video %s: %w", videoID, err)
	}

	for code := range locs {
		res.Applied = append(res.Applied, code)
	}
	sort.Strings(res.Applied)
	return res, nil
}

// buildUpdateBody merges the document's default entry over the video's
// current snippet and replaces the localization map wholesale.
func buildUpdateBody(current *youtube.Video, videoID string, doc engine.MetadataDocument, locs map[string]engine.Localization) *youtube.Video {
	snippet := &youtube.VideoSnippet{CategoryId: defaultCategoryID}
	if current.Snippet != nil {
		snippet.Title = current.Snippet.Title
		snippet.Description = current.Snippet.Description
		snippet.DefaultLanguage = current.Snippet.DefaultLanguage
		if current.Snippet.CategoryId != "" {
			snippet.CategoryId = current.Snippet.CategoryId
		}
	}
	if def, ok := doc[engine.KeyDefault]; ok {
		if def.Title != "" {
			snippet.Title = def.Title
		}
		if def.Description != "" {
			snippet.Description = def.Description
		}
		if def.Language != "" {
			snippet.DefaultLanguage = def.Language
		}
	}

	body := &youtube.Video{
		Id:            videoID,
		Snippet:       snippet,
		Localizations: make(map[string]youtube.VideoLocalization, len(locs)),
	}
	for code, loc := range locs {
		body.Localizations[code] = youtube.VideoLocalization{
			Title:       loc.Title,
			Description: loc.Description,
		}
	}
	return body
}
