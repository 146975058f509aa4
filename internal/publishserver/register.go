// Package publishserver registers the publishing MCP tools:
// translate_metadata, upload_video, update_localizations, upload_captions,
// list_languages.
package publishserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all publishing tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerTranslateMetadata(server)
	registerUploadVideo(server)
	registerUpdateLocalizations(server)
	registerUploadCaptions(server)
	registerListLanguages(server)
}
