package publishserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_publish/internal/engine"
	"github.com/anatolykoptev/go_publish/internal/toolutil"
)

func registerTranslateMetadata(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "translate_metadata",
		Description: "Translate a video title and description into the given target languages (default: all 73 supported). Returns a metadata document keyed by language code, plus the list of languages that failed. Identical requests are served from cache.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.TranslateInput) (*mcp.CallToolResult, engine.TranslateOutput, error) {
		if input.Title == "" {
			return nil, engine.TranslateOutput{}, fmt.Errorf("title is required")
		}

		source := input.SourceLang
		if source == "" {
			source = engine.DefaultSourceLang
		}

		requested := input.Langs
		if len(requested) == 0 {
			requested = engine.AllLanguageCodes()
		}
		known, unknown := engine.FilterKnown(requested)

		targets := make([]string, 0, len(known))
		for _, lang := range known {
			if lang != source {
				targets = append(targets, lang)
			}
		}

		cacheKey := engine.CacheKey("translate_metadata",
			input.Title, input.Description, source, strings.Join(targets, ","))
		if out, ok := toolutil.CacheLoadJSON[engine.TranslateOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		parallel := input.MaxParallel
		if parallel <= 0 {
			parallel = engine.Cfg.MaxParallel
		}
		doc, failed := engine.TranslateMetadata(ctx, engine.Generate, engine.TranslateRequest{
			Title:       input.Title,
			Description: input.Description,
			SourceLang:  source,
			TargetLangs: targets,
			MaxParallel: parallel,
			QPS:         engine.Cfg.TranslateQPS,
		})

		out := engine.TranslateOutput{
			Metadata: doc,
			Failed:   failed,
			Unknown:  unknown,
		}
		// Cache only fully successful batches so a transient failure doesn't
		// stick for the TTL.
		if len(failed) == 0 {
			toolutil.CacheStoreJSON(ctx, cacheKey, out)
		}
		return nil, out, nil
	})
}
