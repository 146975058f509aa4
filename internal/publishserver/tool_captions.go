package publishserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_publish/internal/engine"
	"github.com/anatolykoptev/go_publish/internal/engine/publish"
)

func registerUploadCaptions(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "upload_captions",
		Description: "Upload every caption file in a directory to a video. Files are named <language-code>.<ext> (.srt, .vtt, .sbv, .ttml). One failed track never aborts the batch; the result lists uploaded and failed languages.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.CaptionsInput) (*mcp.CallToolResult, engine.CaptionsOutput, error) {
		if input.VideoID == "" {
			return nil, engine.CaptionsOutput{}, fmt.Errorf("video_id is required")
		}
		if input.Dir == "" {
			return nil, engine.CaptionsOutput{}, fmt.Errorf("dir is required")
		}

		tracks, err := publish.DiscoverCaptions(input.Dir)
		if err != nil {
			return nil, engine.CaptionsOutput{}, err
		}
		if len(tracks) == 0 {
			return nil, engine.CaptionsOutput{Uploaded: []string{}}, nil
		}

		svc, err := publish.NewService(ctx)
		if err != nil {
			return nil, engine.CaptionsOutput{}, err
		}

		out := engine.CaptionsOutput{Uploaded: []string{}}
		for _, res := range publish.UploadCaptions(ctx, svc, input.VideoID, tracks, nil) {
			if res.Err != nil {
				out.Failed = append(out.Failed, res.Lang)
			} else {
				out.Uploaded = append(out.Uploaded, res.Lang)
			}
		}
		return nil, out, nil
	})
}
