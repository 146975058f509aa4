package engine

// MCP tool input/output types. jsonschema tags feed the tool schemas.

// --- translate_metadata ---

type TranslateInput struct {
	Title       string   `json:"title" jsonschema:"Source title to translate"`
	Description string   `json:"description,omitempty" jsonschema:"Source description to translate"`
	SourceLang  string   `json:"source_lang,omitempty" jsonschema:"Source language code (default: ko)"`
	Langs       []string `json:"langs,omitempty" jsonschema:"Target language codes (default: all supported languages)"`
	MaxParallel int      `json:"max_parallel,omitempty" jsonschema:"Max concurrent translation calls (default: 10)"`
}

type TranslateOutput struct {
	Metadata MetadataDocument `json:"metadata"`
	Failed   []string         `json:"failed,omitempty"` // languages that failed to translate
	Unknown  []string         `json:"unknown,omitempty"`
}

// --- upload_video ---

type UploadInput struct {
	Video    string `json:"video" jsonschema:"Path to the video file on the server"`
	Metadata string `json:"metadata,omitempty" jsonschema:"Path to a metadata.json produced by translate_metadata"`
	Privacy  string `json:"privacy,omitempty" jsonschema:"Privacy level: public, unlisted or private (default: private)"`
}

type UploadOutput struct {
	VideoID string   `json:"video_id"`
	URL     string   `json:"url"`
	Applied []string `json:"applied,omitempty"` // localization codes attached, platform space
	Skipped []string `json:"skipped,omitempty"` // "lang (reason)" entries
}

// --- update_localizations ---

type LocalizeInput struct {
	VideoID  string `json:"video_id" jsonschema:"Existing video id to update"`
	Metadata string `json:"metadata" jsonschema:"Path to a metadata.json produced by translate_metadata"`
}

type LocalizeOutput struct {
	Updated bool     `json:"updated"`
	Error   string   `json:"error,omitempty"`
	Applied []string `json:"applied,omitempty"`
}

// --- upload_captions ---

type CaptionsInput struct {
	VideoID string `json:"video_id" jsonschema:"Video id to attach captions to"`
	Dir     string `json:"dir" jsonschema:"Directory of caption files named <language-code>.<ext> (.srt, .vtt, .sbv, .ttml)"`
}

type CaptionsOutput struct {
	Uploaded []string `json:"uploaded"`
	Failed   []string `json:"failed,omitempty"`
}

// --- list_languages ---

type LanguagesOutput struct {
	Languages map[string]string `json:"languages"` // code → display name
	Total     int               `json:"total"`
}
