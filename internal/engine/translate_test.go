package engine

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func echoGen(ctx context.Context, prompt string) (string, error) {
	return prompt, nil
}

// taggedGen builds a fake that translates by tagging the text with the
// target language code parsed back out of the rendered prompt. It runs on
// worker goroutines, so parse failures surface as errors, not assertions.
func taggedGen(t *testing.T) GenerateFunc {
	t.Helper()
	return func(ctx context.Context, prompt string) (string, error) {
		// The default template renders "to {lang_name} ({target_lang})".
		start := strings.Index(prompt, "(")
		end := strings.Index(prompt, ")")
		if start < 0 || end < start {
			return "", errors.New("prompt missing language marker")
		}
		return "[" + prompt[start+1:end] + "]", nil
	}
}

func TestTranslateMetadataDocumentKeys(t *testing.T) {
	doc, failed := TranslateMetadata(context.Background(), taggedGen(t), TranslateRequest{
		Title:       "title",
		Description: "desc",
		SourceLang:  "ko",
		TargetLangs: []string{"en", "ja", "fr"},
	})

	require.Empty(t, failed)
	require.Len(t, doc, 5) // default + ko mirror + 3 targets
	require.Equal(t, "title", doc[KeyDefault].Title)
	require.Equal(t, "ko", doc[KeyDefault].Language)
	require.Equal(t, "title", doc["ko"].Title)
	require.Equal(t, "[en]", doc["en"].Title)
	require.Equal(t, "[en]", doc["en"].Description)
	require.Equal(t, "[ja]", doc["ja"].Title)
}

func TestTranslateMetadataPartialFailure(t *testing.T) {
	gen := func(ctx context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "(ja)") {
			return "", errors.New("quota exceeded")
		}
		return "ok", nil
	}

	doc, failed := TranslateMetadata(context.Background(), gen, TranslateRequest{
		Title:       "t",
		Description: "d",
		SourceLang:  "ko",
		TargetLangs: []string{"en", "ja", "fr"},
		MaxParallel: 1,
	})

	require.Equal(t, []string{"ja"}, failed)
	require.Len(t, doc, 4) // default + ko + en + fr
	require.NotContains(t, doc, "ja")
}

func TestTranslateMetadataTitleFailureFailsLanguage(t *testing.T) {
	var calls atomic.Int64
	gen := func(ctx context.Context, prompt string) (string, error) {
		calls.Add(1)
		return "", errors.New("down")
	}

	doc, failed := TranslateMetadata(context.Background(), gen, TranslateRequest{
		Title:       "t",
		Description: "d",
		SourceLang:  "ko",
		TargetLangs: []string{"en"},
	})

	require.Equal(t, []string{"en"}, failed)
	require.Len(t, doc, 2)
	// Description call is skipped after the title fails.
	require.Equal(t, int64(1), calls.Load())
}

func TestTranslateMetadataConcurrencyBound(t *testing.T) {
	const limit = 3
	var (
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	gate := make(chan struct{})
	gen := func(ctx context.Context, prompt string) (string, error) {
		mu.Lock()
		active++
		if active > maxSeen {
			maxSeen = active
		}
		mu.Unlock()
		<-gate
		mu.Lock()
		active--
		mu.Unlock()
		return "x", nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		TranslateMetadata(context.Background(), gen, TranslateRequest{
			Title:       "t",
			Description: "d",
			SourceLang:  "ko",
			TargetLangs: []string{"en", "ja", "fr", "de", "es", "it", "pt", "ru"},
			MaxParallel: limit,
		})
	}()
	close(gate)
	<-done

	require.LessOrEqual(t, maxSeen, limit)
}

func TestTranslateMetadataOnResultCompletionOrder(t *testing.T) {
	var (
		mu    sync.Mutex
		seen  []int
		langs []string
	)

	doc, failed := TranslateMetadata(context.Background(), taggedGen(t), TranslateRequest{
		Title:       "t",
		Description: "d",
		SourceLang:  "ko",
		TargetLangs: []string{"en", "ja", "fr", "de"},
		OnResult: func(done, total int, out TranslationOutcome) {
			mu.Lock()
			defer mu.Unlock()
			require.Equal(t, 4, total)
			seen = append(seen, done)
			langs = append(langs, out.Lang)
		},
	})

	require.Empty(t, failed)
	require.Len(t, doc, 6)
	require.Equal(t, []int{1, 2, 3, 4}, seen)
	require.ElementsMatch(t, []string{"en", "ja", "fr", "de"}, langs)
}

func TestTranslateMetadataNoTargets(t *testing.T) {
	doc, failed := TranslateMetadata(context.Background(), echoGen, TranslateRequest{
		Title:       "t",
		Description: "d",
		SourceLang:  "ko",
	})

	require.Empty(t, failed)
	require.Len(t, doc, 2)
}

func TestTranslateTextStripsFences(t *testing.T) {
	gen := func(ctx context.Context, prompt string) (string, error) {
		return "```json\nhello\n```", nil
	}
	out, err := TranslateText(context.Background(), gen, defaultPromptTemplate, "x", "en")
	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"```\nwrapped\n```", "wrapped"},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"  padded  ", "padded"},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, stripFences(tt.in), "input %q", tt.in)
	}
}

func TestRenderPrompt(t *testing.T) {
	out := RenderPrompt(defaultPromptTemplate, "ja", "Japanese", "hello world")
	require.Contains(t, out, "to Japanese (ja)")
	require.Contains(t, out, "hello world")
	require.NotContains(t, out, "{text}")
	require.NotContains(t, out, "{lang_name}")
	require.NotContains(t, out, "{target_lang}")
}

func TestRenderPromptCustomTemplate(t *testing.T) {
	out := RenderPrompt("{target_lang}:{text}", "fr", "French", "bonjour")
	require.Equal(t, "fr:bonjour", out)
}
