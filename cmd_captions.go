package main

import (
	"context"
	"flag"
	"fmt"

	youtube "google.golang.org/api/youtube/v3"

	"github.com/anatolykoptev/go_publish/internal/engine"
	"github.com/anatolykoptev/go_publish/internal/engine/publish"
)

// cmdCaptions uploads every caption file in a directory to an existing video.
// Any failed track makes the command exit non-zero.
func cmdCaptions(args []string) error {
	fs := flag.NewFlagSet("captions", flag.ExitOnError)
	videoID := fs.String("video-id", "", "video to attach captions to (required)")
	dir := fs.String("dir", "", "directory of caption files named <language-code>.<ext> (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *videoID == "" || *dir == "" {
		return fmt.Errorf("usage: go_publish captions --video-id ID --dir DIR")
	}

	if err := initEngine("", false); err != nil {
		return err
	}
	ctx := context.Background()
	svc, err := publish.NewService(ctx)
	if err != nil {
		return err
	}

	uploaded, failed, err := uploadCaptionDir(ctx, svc, *videoID, *dir)
	if err != nil {
		return err
	}
	fmt.Printf("Captions uploaded: %d, failed: %d\n", uploaded, failed)
	if failed > 0 {
		return fmt.Errorf("%d caption upload(s) failed", failed)
	}
	return nil
}

// uploadCaptionDir discovers and uploads caption tracks with progress lines.
// Shared by the captions command and the run pipeline.
func uploadCaptionDir(ctx context.Context, svc *youtube.Service, videoID, dir string) (uploaded, failed int, err error) {
	tracks, err := publish.DiscoverCaptions(dir)
	if err != nil {
		return 0, 0, err
	}
	if len(tracks) == 0 {
		fmt.Printf("Warning: no caption files found in %s\n", dir)
		return 0, 0, nil
	}

	fmt.Printf("Uploading %d caption file(s)...\n", len(tracks))
	for _, res := range publish.UploadCaptions(ctx, svc, videoID, tracks, func(done, total int, res publish.CaptionResult) {
		status := "ok"
		if res.Err != nil {
			status = "failed"
		}
		fmt.Printf("[%d/%d] %s (%s)... %s\n", done, total, res.Lang, engine.DisplayName(res.Lang), status)
	}) {
		if res.Err != nil {
			failed++
		} else {
			uploaded++
		}
	}
	return uploaded, failed, nil
}
