package publish

import (
	"context"
	"log/slog"

	youtube "google.golang.org/api/youtube/v3"

	"github.com/anatolykoptev/go_publish/internal/engine"
)

// SupportedLanguages queries the backend for its localization language set.
// On failure it logs and falls back to the built-in snapshot so a publish run
// never dies on this lookup.
func SupportedLanguages(ctx context.Context, svc *youtube.Service) map[string]bool {
	engine.IncrI18nLookups()
	resp, err := svc.I18nLanguages.List([]string{"snippet"}).Context(ctx).Do()
	if err != nil {
		slog.Warn("languages: i18n query failed, using built-in set", slog.Any("error", err))
		return engine.FallbackSupported()
	}
	return supportedSet(resp)
}

// supportedSet extracts the language ids from an i18n response. An empty
// response falls back to the built-in snapshot.
func supportedSet(resp *youtube.I18nLanguageListResponse) map[string]bool {
	if resp == nil || len(resp.Items) == 0 {
		return engine.FallbackSupported()
	}
	set := make(map[string]bool, len(resp.Items))
	for _, item := range resp.Items {
		if item != nil && item.Id != "" {
			set[item.Id] = true
		}
	}
	return set
}
