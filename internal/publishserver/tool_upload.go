package publishserver

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_publish/internal/engine"
	"github.com/anatolykoptev/go_publish/internal/engine/publish"
)

func registerUploadVideo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "upload_video",
		Description: "Upload a video file with chunked resumable upload. Takes an optional metadata.json from translate_metadata; its translations are attached as localizations in the same request. Returns the video id and watch URL.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.UploadInput) (*mcp.CallToolResult, engine.UploadOutput, error) {
		if input.Video == "" {
			return nil, engine.UploadOutput{}, fmt.Errorf("video is required")
		}
		if _, err := os.Stat(input.Video); err != nil {
			return nil, engine.UploadOutput{}, fmt.Errorf("video file not found: %s", input.Video)
		}
		privacy := input.Privacy
		if privacy == "" {
			privacy = engine.PrivacyPrivate
		}
		switch privacy {
		case engine.PrivacyPublic, engine.PrivacyUnlisted, engine.PrivacyPrivate:
		default:
			return nil, engine.UploadOutput{}, fmt.Errorf("invalid privacy %q", privacy)
		}

		doc := engine.MetadataDocument{}
		if input.Metadata != "" {
			loaded, err := engine.LoadMetadata(input.Metadata)
			if err != nil {
				return nil, engine.UploadOutput{}, err
			}
			doc = loaded
		}

		svc, err := publish.NewService(ctx)
		if err != nil {
			return nil, engine.UploadOutput{}, err
		}

		supported := publish.SupportedLanguages(ctx, svc)
		video, parts, skips := publish.BuildUploadBody(doc, input.Video, privacy, supported)

		steps := publish.UploadVideo(ctx, svc, input.Video, video, parts)
		id, err := publish.CollectUpload(steps, func(fraction float64) {
			slog.Info("upload progress", slog.Int("percent", int(fraction*100)))
		})
		if err != nil {
			return nil, engine.UploadOutput{}, err
		}

		applied := make([]string, 0, len(video.Localizations))
		for code := range video.Localizations {
			applied = append(applied, code)
		}

		return nil, engine.UploadOutput{
			VideoID: id,
			URL:     publish.WatchURL(id),
			Applied: applied,
			Skipped: engine.FormatSkips(skips),
		}, nil
	})
}
