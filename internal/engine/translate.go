package engine

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/time/rate"
)

// DefaultMaxParallel bounds the translation fan-out when the caller
// doesn't set a limit.
const DefaultMaxParallel = 10

// GenerateFunc produces text for a prompt. Production code wires this to the
// configured LLM client (Generate); tests pass fakes.
type GenerateFunc func(ctx context.Context, prompt string) (string, error)

// TranslationOutcome is the per-language result of a translation attempt.
// Exactly one of Entry/Err is meaningful.
type TranslationOutcome struct {
	Lang  string
	Entry Entry
	Err   error
}

// TranslateRequest describes one metadata translation batch.
type TranslateRequest struct {
	Title       string
	Description string
	SourceLang  string
	TargetLangs []string // distinct, source language already excluded
	Template    string   // "" = built-in template
	MaxParallel int      // <=0 = DefaultMaxParallel
	QPS         float64  // 0 = unlimited

	// OnResult is called once per completed language, in completion order.
	// done is 1-based.
	OnResult func(done, total int, out TranslationOutcome)
}

// stripFences removes markdown code fences some models wrap output in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// TranslateText translates one text into one target language with a single
// generate call.
func TranslateText(ctx context.Context, gen GenerateFunc, template, text, targetLang string) (string, error) {
	prompt := RenderPrompt(template, targetLang, DisplayName(targetLang), text)
	IncrTranslationCalls()
	raw, err := gen(ctx, prompt)
	if err != nil {
		IncrTranslationErrors()
		return "", err
	}
	return stripFences(raw), nil
}

// TranslateMetadata fans translation out across all target languages, bounded
// by MaxParallel, and aggregates results into a metadata document. The
// document always contains the default entry and the source-language mirror;
// each target language is added only if both its title and description
// translate successfully. Per-language failures never abort the batch: they
// are returned as a list of failed codes, in completion order.
func TranslateMetadata(ctx context.Context, gen GenerateFunc, req TranslateRequest) (MetadataDocument, []string) {
	doc := NewDocument(req.Title, req.Description, req.SourceLang)

	total := len(req.TargetLangs)
	if total == 0 {
		return doc, nil
	}

	limit := req.MaxParallel
	if limit <= 0 {
		limit = DefaultMaxParallel
	}
	template := req.Template
	if template == "" {
		template = defaultPromptTemplate
	}
	var limiter *rate.Limiter
	if req.QPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(req.QPS), 1)
	}

	// Fan out, collect in completion order. The results channel is the only
	// shared state between workers.
	results := make(chan TranslationOutcome, total)
	sem := make(chan struct{}, limit)
	for _, lang := range req.TargetLangs {
		go func(lang string) {
			sem <- struct{}{}
			defer func() { <-sem }()
			results <- translateOne(ctx, gen, limiter, template, req.Title, req.Description, lang)
		}(lang)
	}

	var failed []string
	for done := 1; done <= total; done++ {
		out := <-results
		if out.Err != nil {
			failed = append(failed, out.Lang)
			slog.Warn("translation failed",
				slog.String("lang", out.Lang),
				slog.Any("error", out.Err),
			)
		} else {
			doc[out.Lang] = out.Entry
		}
		if req.OnResult != nil {
			req.OnResult(done, total, out)
		}
	}
	return doc, failed
}

// translateOne translates title and description for a single language.
// The two calls are sequential; either failure fails the whole language.
func translateOne(ctx context.Context, gen GenerateFunc, limiter *rate.Limiter, template, title, description, lang string) TranslationOutcome {
	gated := gen
	if limiter != nil {
		gated = func(ctx context.Context, prompt string) (string, error) {
			if err := limiter.Wait(ctx); err != nil {
				return "", err
			}
			return gen(ctx, prompt)
		}
	}

	translatedTitle, err := TranslateText(ctx, gated, template, title, lang)
	if err != nil {
		return TranslationOutcome{Lang: lang, Err: err}
	}
	translatedDesc, err := TranslateText(ctx, gated, template, description, lang)
	if err != nil {
		return TranslationOutcome{Lang: lang, Err: err}
	}
	return TranslationOutcome{
		Lang:  lang,
		Entry: Entry{Title: translatedTitle, Description: translatedDesc},
	}
}
