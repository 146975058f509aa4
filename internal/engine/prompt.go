package engine

import (
	"fmt"
	"os"
	"strings"
)

// Translation instruction template — data only, no logic.
//
// Placeholders: {lang_name} (display name), {target_lang} (canonical code),
// {text} (text to translate). Custom templates loaded from a file use the
// same placeholders.

const defaultPromptTemplate = `Translate the following text to {lang_name} ({target_lang}).
Only return the translated text, nothing else.
Keep the tone and style appropriate for YouTube video metadata.

Text to translate:
{text}`

// DefaultPromptTemplate exposes the built-in instruction template.
func DefaultPromptTemplate() string {
	return defaultPromptTemplate
}

// RenderPrompt substitutes the template placeholders for one translation call.
func RenderPrompt(template, targetLang, langName, text string) string {
	return strings.NewReplacer(
		"{lang_name}", langName,
		"{target_lang}", targetLang,
		"{text}", text,
	).Replace(template)
}

// LoadPromptTemplate reads a custom instruction template from a file.
func LoadPromptTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("prompt: read %s: %w", path, err)
	}
	return string(data), nil
}
