package publish

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/googleapi"
	youtube "google.golang.org/api/youtube/v3"

	"github.com/anatolykoptev/go_publish/internal/engine"
)

// defaultCategoryID is "People & Blogs".
const defaultCategoryID = "22"

// UploadStep is one event in the upload stream: a progress fraction, the
// terminal video resource, or a terminal error. Exactly one of Video/Err is
// set on the final step.
type UploadStep struct {
	Fraction float64
	Video    *youtube.Video
	Err      error
}

// BuildUploadBody assembles the video resource for an insert call from a
// metadata document. The snippet comes from the document's default entry;
// localizations are reconciled against the supported set. parts lists the
// resource parts to send (localizations is included only when non-empty).
func BuildUploadBody(doc engine.MetadataDocument, videoPath, privacy string, supported map[string]bool) (video *youtube.Video, parts []string, skips []engine.Skip) {
	video = &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:           engine.DefaultTitle(doc, videoPath),
			Description:     engine.DefaultDescription(doc),
			DefaultLanguage: engine.DefaultLanguage(doc),
			CategoryId:      defaultCategoryID,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           privacy,
			SelfDeclaredMadeForKids: false,
			// false is the zero value; force it onto the wire so the backend
			// doesn't leave the audience setting undeclared.
			ForceSendFields: []string{"SelfDeclaredMadeForKids"},
		},
	}
	parts = []string{"snippet", "status"}

	locs, skips := engine.BuildLocalizations(doc, supported)
	if len(locs) > 0 {
		video.Localizations = make(map[string]youtube.VideoLocalization, len(locs))
		for code, loc := range locs {
			video.Localizations[code] = youtube.VideoLocalization{
				Title:       loc.Title,
				Description: loc.Description,
			}
		}
		parts = append(parts, "localizations")
	}
	return video, parts, skips
}

// UploadVideo streams a chunked resumable upload. It returns immediately with
// a channel of steps: zero or more progress fractions followed by exactly one
// terminal step. The channel is closed after the terminal step.
func UploadVideo(ctx context.Context, svc *youtube.Service, videoPath string, video *youtube.Video, parts []string) <-chan UploadStep {
	steps := make(chan UploadStep, 16)
	go func() {
		defer close(steps)

		f, err := os.Open(videoPath)
		if err != nil {
			steps <- UploadStep{Err: fmt.Errorf("upload: open %s: %w", videoPath, err)}
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			steps <- UploadStep{Err: fmt.Errorf("upload: stat %s: %w", videoPath, err)}
			return
		}
		size := info.Size()

		call := svc.Videos.Insert(parts, video).
			Media(f, googleapi.ChunkSize(googleapi.DefaultUploadChunkSize)).
			ProgressUpdater(func(current, total int64) {
				engine.IncrUploadChunks()
				den := total
				if den <= 0 {
					den = size
				}
				if den <= 0 {
					return
				}
				steps <- UploadStep{Fraction: float64(current) / float64(den)}
			}).
			Context(ctx)

		inserted, err := call.Do()
		if err != nil {
			steps <- UploadStep{Err: fmt.Errorf("upload: insert: %w", err)}
			return
		}
		steps <- UploadStep{Video: inserted}
	}()
	return steps
}

// CollectUpload drains an upload step stream, invoking onProgress once per
// intermediate progress step, and returns the terminal video id or error.
// Terminal steps never produce a progress event. onProgress may be nil.
func CollectUpload(steps <-chan UploadStep, onProgress func(fraction float64)) (string, error) {
	var (
		id  string
		err error
	)
	for step := range steps {
		switch {
		case step.Err != nil:
			err = step.Err
		case step.Video != nil:
			id = step.Video.Id
		default:
			if onProgress != nil {
				onProgress(step.Fraction)
			}
		}
	}
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("upload: stream ended without a video id")
	}
	return id, nil
}

// WatchURL returns the public watch page for a video id.
func WatchURL(id string) string {
	return "https://youtube.com/watch?v=" + id
}
