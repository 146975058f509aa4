package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/anatolykoptev/go_publish/internal/engine"
	"github.com/anatolykoptev/go_publish/internal/engine/publish"
)

// cmdUpload uploads a new video, or with --video-id updates localizations on
// an existing one.
func cmdUpload(args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	metadata := fs.String("metadata", "", "metadata.json produced by the translate stage")
	privacy := fs.String("privacy", engine.PrivacyPrivate, "privacy level: public, unlisted or private")
	videoID := fs.String("video-id", "", "update localizations on this existing video instead of uploading")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch *privacy {
	case engine.PrivacyPublic, engine.PrivacyUnlisted, engine.PrivacyPrivate:
	default:
		return fmt.Errorf("invalid privacy %q (want public, unlisted or private)", *privacy)
	}

	doc := engine.MetadataDocument{}
	if *metadata != "" {
		loaded, err := engine.LoadMetadata(*metadata)
		if err != nil {
			return err
		}
		doc = loaded
	}

	if err := initEngine("", false); err != nil {
		return err
	}
	ctx := context.Background()
	svc, err := publish.NewService(ctx)
	if err != nil {
		return err
	}
	supported := publish.SupportedLanguages(ctx, svc)

	if *videoID != "" {
		if *metadata == "" {
			return fmt.Errorf("usage: go_publish upload --video-id ID --metadata metadata.json")
		}
		res, err := publish.UpdateLocalizations(ctx, svc, *videoID, doc, supported)
		for _, line := range localizationReport(res, err) {
			fmt.Println(line)
		}
		fmt.Printf("\nDone: %s\n", publish.WatchURL(*videoID))
		return nil
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: go_publish upload <video> [--metadata metadata.json] [--privacy P]")
	}
	videoPath := fs.Arg(0)
	if _, err := os.Stat(videoPath); err != nil {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	video, parts, skips := publish.BuildUploadBody(doc, videoPath, *privacy, supported)
	printSkips(skips)

	fmt.Printf("Uploading %s...\n", videoPath)
	steps := publish.UploadVideo(ctx, svc, videoPath, video, parts)
	id, err := publish.CollectUpload(steps, printUploadProgress)
	if err != nil {
		return err
	}
	fmt.Printf("Upload complete: %s\n", id)
	fmt.Printf("Localizations attached: %d\n", len(video.Localizations))
	fmt.Printf("\nDone: %s\n", publish.WatchURL(id))
	return nil
}
