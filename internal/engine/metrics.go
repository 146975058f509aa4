package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TranslationCalls  atomic.Int64
	TranslationErrors atomic.Int64
	UploadChunks      atomic.Int64
	CaptionUploads    atomic.Int64
	CaptionErrors     atomic.Int64
	I18nLookups       atomic.Int64
	LocalizationSkips atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"translation_calls":  metrics.TranslationCalls.Load(),
		"translation_errors": metrics.TranslationErrors.Load(),
		"upload_chunks":      metrics.UploadChunks.Load(),
		"caption_uploads":    metrics.CaptionUploads.Load(),
		"caption_errors":     metrics.CaptionErrors.Load(),
		"i18n_lookups":       metrics.I18nLookups.Load(),
		"localization_skips": metrics.LocalizationSkips.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"translation_calls", "translation_errors",
		"upload_chunks",
		"caption_uploads", "caption_errors",
		"i18n_lookups", "localization_skips",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for this package.
func IncrTranslationCalls()  { metrics.TranslationCalls.Add(1) }
func IncrTranslationErrors() { metrics.TranslationErrors.Add(1) }

// Incrementors for the publish sub-package.
func IncrUploadChunks()      { metrics.UploadChunks.Add(1) }
func IncrCaptionUploads()    { metrics.CaptionUploads.Add(1) }
func IncrCaptionErrors()     { metrics.CaptionErrors.Add(1) }
func IncrI18nLookups()       { metrics.I18nLookups.Add(1) }
func IncrLocalizationSkips() { metrics.LocalizationSkips.Add(1) }
