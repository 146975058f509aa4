package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/anatolykoptev/go_publish/internal/engine"
	"github.com/anatolykoptev/go_publish/internal/engine/publish"
)

// cmdRun is the full pipeline: translate (unless skipped), persist
// metadata.json beside the job file, upload the video (or update
// localizations on an existing one), then upload captions when asked.
func cmdRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	skipTranslate := fs.Bool("skip-translate", false, "skip the translation stage (default entry only)")
	videoID := fs.String("video-id", "", "update localizations on this existing video instead of uploading")
	captionsDir := fs.String("captions", "", "directory of caption files to upload after the video")
	privacy := fs.String("privacy", "", "privacy override: public, unlisted or private")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: go_publish run <input.json> [flags]")
	}

	job, err := engine.LoadJobConfig(fs.Arg(0))
	if err != nil {
		return err
	}
	if *privacy != "" {
		switch *privacy {
		case engine.PrivacyPublic, engine.PrivacyUnlisted, engine.PrivacyPrivate:
			job.Privacy = *privacy
		default:
			return fmt.Errorf("invalid privacy %q (want public, unlisted or private)", *privacy)
		}
	}
	if len(job.UnknownLangs) > 0 {
		fmt.Printf("Warning: unknown language codes ignored: %s\n", engine.JoinOrNone(job.UnknownLangs))
	}

	if err := initEngine(job.Model, !*skipTranslate); err != nil {
		return err
	}
	ctx := context.Background()

	fmt.Printf("Publishing %q (%s)\n", engine.TruncateRunes(job.Title, 60, "..."), job.Video)

	// Stage 1: translate.
	var doc engine.MetadataDocument
	if *skipTranslate {
		fmt.Println("Skipping translation stage.")
		doc = engine.SkipTranslationDocument(job.Title, job.Description, job.SourceLang)
	} else {
		doc = translateJob(ctx, job)
	}

	metadataPath := filepath.Join(filepath.Dir(fs.Arg(0)), "metadata.json")
	if err := engine.SaveMetadata(metadataPath, doc); err != nil {
		return err
	}
	fmt.Printf("Metadata saved to %s\n", metadataPath)

	// Stage 2: upload or update.
	svc, err := publish.NewService(ctx)
	if err != nil {
		return err
	}
	supported := publish.SupportedLanguages(ctx, svc)

	id := *videoID
	if id == "" {
		video, parts, skips := publish.BuildUploadBody(doc, job.Video, job.Privacy, supported)
		printSkips(skips)

		fmt.Printf("Uploading %s...\n", job.Video)
		steps := publish.UploadVideo(ctx, svc, job.Video, video, parts)
		id, err = publish.CollectUpload(steps, printUploadProgress)
		if err != nil {
			return err
		}
		fmt.Printf("Upload complete: %s\n", id)
		fmt.Printf("Localizations attached: %d\n", len(video.Localizations))
	} else {
		fmt.Printf("Updating localizations on existing video %s...\n", id)
		res, err := publish.UpdateLocalizations(ctx, svc, id, doc, supported)
		for _, line := range localizationReport(res, err) {
			fmt.Println(line)
		}
	}

	// Stage 3: captions.
	if *captionsDir != "" {
		uploaded, failed, err := uploadCaptionDir(ctx, svc, id, *captionsDir)
		if err != nil {
			return err
		}
		fmt.Printf("Captions uploaded: %d, failed: %d\n", uploaded, failed)
	}

	fmt.Printf("\nDone: %s\n", publish.WatchURL(id))
	return nil
}

// translateJob runs the fan-out with per-language progress lines.
func translateJob(ctx context.Context, job *engine.JobConfig) engine.MetadataDocument {
	fmt.Printf("Translating into %d languages...\n", len(job.TargetLangs))
	doc, failed := engine.TranslateMetadata(ctx, engine.Generate, engine.TranslateRequest{
		Title:       job.Title,
		Description: job.Description,
		SourceLang:  job.SourceLang,
		TargetLangs: job.TargetLangs,
		Template:    job.Template,
		MaxParallel: job.MaxParallel,
		QPS:         engine.Cfg.TranslateQPS,
		OnResult:    printTranslationProgress,
	})
	if len(failed) > 0 {
		fmt.Printf("Failed languages: %s\n", engine.JoinOrNone(failed))
	}
	return doc
}

func printTranslationProgress(done, total int, out engine.TranslationOutcome) {
	status := "ok"
	if out.Err != nil {
		status = "failed"
	}
	fmt.Printf("[%d/%d] %s (%s)... %s\n", done, total, out.Lang, engine.DisplayName(out.Lang), status)
}

func printUploadProgress(fraction float64) {
	fmt.Printf("Upload progress: %d%%\n", int(fraction*100))
}

func printSkips(skips []engine.Skip) {
	for _, line := range engine.FormatSkips(skips) {
		fmt.Printf("Skipping localization: %s\n", line)
	}
}

// localizationReport renders the outcome of a localization update. A failed
// update is reported, never fatal: the video exists and plays without it.
func localizationReport(res *publish.UpdateResult, err error) []string {
	if err != nil {
		return []string{fmt.Sprintf("Localization update failed: %v", err)}
	}
	var lines []string
	for _, line := range engine.FormatSkips(res.Skipped) {
		lines = append(lines, "Skipping localization: "+line)
	}
	return append(lines, fmt.Sprintf("Localizations updated: %d", len(res.Applied)))
}
