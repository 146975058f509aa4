package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_publish/internal/engine"
)

// cmdTranslate runs the translation stage alone and writes the metadata file.
func cmdTranslate(args []string) error {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	title := fs.String("title", "", "source title (required)")
	description := fs.String("description", "", "source description")
	sourceLang := fs.String("source-lang", engine.DefaultSourceLang, "source language code")
	langs := fs.String("langs", "", "comma-separated target codes (default: all supported)")
	model := fs.String("model", "", "generation model override")
	parallel := fs.Int("parallel", engine.DefaultMaxParallel, "max concurrent translation calls")
	output := fs.String("o", "metadata.json", "output metadata file")
	promptFile := fs.String("prompt", "", "custom instruction template file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" {
		return fmt.Errorf("usage: go_publish translate --title T [--description D] [flags]")
	}

	requested := engine.AllLanguageCodes()
	if *langs != "" {
		requested = strings.Split(*langs, ",")
		for i := range requested {
			requested[i] = strings.TrimSpace(requested[i])
		}
	}
	known, unknown := engine.FilterKnown(requested)
	if len(unknown) > 0 {
		fmt.Printf("Warning: unknown language codes ignored: %s\n", engine.JoinOrNone(unknown))
	}
	targets := make([]string, 0, len(known))
	for _, lang := range known {
		if lang != *sourceLang {
			targets = append(targets, lang)
		}
	}

	template := ""
	if *promptFile != "" {
		loaded, err := engine.LoadPromptTemplate(*promptFile)
		if err != nil {
			return err
		}
		template = loaded
	}

	if err := initEngine(*model, true); err != nil {
		return err
	}

	fmt.Printf("Translating into %d languages...\n", len(targets))
	doc, failed := engine.TranslateMetadata(context.Background(), engine.Generate, engine.TranslateRequest{
		Title:       *title,
		Description: *description,
		SourceLang:  *sourceLang,
		TargetLangs: targets,
		Template:    template,
		MaxParallel: *parallel,
		QPS:         engine.Cfg.TranslateQPS,
		OnResult:    printTranslationProgress,
	})
	if len(failed) > 0 {
		fmt.Printf("Failed languages: %s\n", engine.JoinOrNone(failed))
	}

	if err := engine.SaveMetadata(*output, doc); err != nil {
		return err
	}
	fmt.Printf("Metadata saved to %s (%d languages, %d failed)\n", *output, len(doc)-1, len(failed))
	return nil
}
