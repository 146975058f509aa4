package publishserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_publish/internal/engine"
)

func registerListLanguages(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_languages",
		Description: "List every language code the translation pipeline supports, with English display names.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, engine.LanguagesOutput, error) {
		languages := make(map[string]string, len(engine.Languages))
		for code, name := range engine.Languages {
			languages[code] = name
		}
		return nil, engine.LanguagesOutput{
			Languages: languages,
			Total:     len(languages),
		}, nil
	})
}
