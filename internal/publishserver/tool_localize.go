package publishserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_publish/internal/engine"
	"github.com/anatolykoptev/go_publish/internal/engine/publish"
)

func registerUpdateLocalizations(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_localizations",
		Description: "Attach or refresh per-language titles and descriptions on an existing video from a metadata.json produced by translate_metadata. Unsupported or incomplete languages are skipped, never failed.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.LocalizeInput) (*mcp.CallToolResult, engine.LocalizeOutput, error) {
		if input.VideoID == "" {
			return nil, engine.LocalizeOutput{}, fmt.Errorf("video_id is required")
		}
		if input.Metadata == "" {
			return nil, engine.LocalizeOutput{}, fmt.Errorf("metadata is required")
		}

		doc, err := engine.LoadMetadata(input.Metadata)
		if err != nil {
			return nil, engine.LocalizeOutput{}, err
		}

		svc, err := publish.NewService(ctx)
		if err != nil {
			return nil, engine.LocalizeOutput{}, err
		}

		supported := publish.SupportedLanguages(ctx, svc)
		res, err := publish.UpdateLocalizations(ctx, svc, input.VideoID, doc, supported)
		if err != nil {
			// A failed localization update is reported, not fatal: the video
			// itself is fine without it.
			slog.Warn("localization update failed",
				slog.String("video_id", input.VideoID),
				slog.Any("error", err))
			return nil, engine.LocalizeOutput{Updated: false, Error: err.Error()}, nil
		}

		return nil, engine.LocalizeOutput{
			Updated: true,
			Applied: res.Applied,
		}, nil
	})
}
