package publish

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"google.golang.org/api/googleapi"
	youtube "google.golang.org/api/youtube/v3"

	"github.com/anatolykoptev/go_publish/internal/engine"
)

// captionExts are the caption formats the backend accepts, keyed by file
// extension (lowercase, with dot).
var captionExts = map[string]bool{
	".srt":  true,
	".vtt":  true,
	".sbv":  true,
	".ttml": true,
}

// CaptionTrack is one discovered caption file: language code from the
// filename stem, path to the file.
type CaptionTrack struct {
	Lang string
	Path string
}

// CaptionResult reports one track upload.
type CaptionResult struct {
	Lang string
	Err  error
}

// DiscoverCaptions scans dir for caption files named <language-code>.<ext>.
// Files with unrecognized extensions are ignored; subdirectories are not
// descended into. Tracks come back sorted by filename.
func DiscoverCaptions(dir string) ([]CaptionTrack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("captions: read dir %s: %w", dir, err)
	}

	var tracks []CaptionTrack
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !captionExts[ext] {
			continue
		}
		lang := strings.TrimSuffix(name, filepath.Ext(name))
		if lang == "" {
			continue
		}
		tracks = append(tracks, CaptionTrack{Lang: lang, Path: filepath.Join(dir, name)})
	}
	sort.Slice(tracks, func(i, j int) bool {
		return filepath.Base(tracks[i].Path) < filepath.Base(tracks[j].Path)
	})
	return tracks, nil
}

// UploadCaptions uploads every track to the video, isolating failures per
// track. onResult (optional) fires after each track with 1-based progress.
func UploadCaptions(ctx context.Context, svc *youtube.Service, videoID string, tracks []CaptionTrack, onResult func(done, total int, res CaptionResult)) []CaptionResult {
	results := make([]CaptionResult, 0, len(tracks))
	for i, track := range tracks {
		err := uploadCaption(ctx, svc, videoID, track)
		if err != nil {
			engine.IncrCaptionErrors()
			slog.Warn("captions: upload failed",
				slog.String("lang", track.Lang),
				slog.Any("error", err))
		} else {
			engine.IncrCaptionUploads()
		}
		res := CaptionResult{Lang: track.Lang, Err: err}
		results = append(results, res)
		if onResult != nil {
			onResult(i+1, len(tracks), res)
		}
	}
	return results
}

// buildCaption assembles the track resource. The filename-derived code is
// both the language and the track name.
func buildCaption(videoID string, track CaptionTrack) *youtube.Caption {
	return &youtube.Caption{
		Snippet: &youtube.CaptionSnippet{
			VideoId:  videoID,
			Language: track.Lang,
			Name:     track.Lang,
			IsDraft:  false,
		},
	}
}

func uploadCaption(ctx context.Context, svc *youtube.Service, videoID string, track CaptionTrack) error {
	f, err := os.Open(track.Path)
	if err != nil {
		return fmt.Errorf("captions: open %s: %w", track.Path, err)
	}
	defer f.Close()

	_, err = svc.Captions.Insert([]string{"snippet"}, buildCaption(videoID, track)).
		Media(f, googleapi.ContentType("application/octet-stream")).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("captions: insert %s: %w", track.Lang, err)
	}
	return nil
}
