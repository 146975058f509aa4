package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KeyDefault is the distinguished document key holding the primary
// (non-localized) snippet. Its entry also carries the source language code.
const KeyDefault = "default"

// DefaultLanguageFallback is used when a document has no default language.
const DefaultLanguageFallback = "en"

// Entry is one language's title/description pair. Language is only set on
// the default entry, where it records the source language of the original text.
type Entry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language,omitempty"`
}

// MetadataDocument maps a language key to its metadata entry. Besides the
// "default" key, every key is a canonical language code. Read-only once built.
type MetadataDocument map[string]Entry

// NewDocument seeds a document with the default entry and a mirror entry keyed
// by the source language code, so the source language is retrievable by its
// own code and not only via "default".
func NewDocument(title, description, sourceLang string) MetadataDocument {
	return MetadataDocument{
		KeyDefault: {Title: title, Description: description, Language: sourceLang},
		sourceLang: {Title: title, Description: description},
	}
}

// SkipTranslationDocument builds the default-only document used when the
// translation stage is skipped.
func SkipTranslationDocument(title, description, sourceLang string) MetadataDocument {
	return MetadataDocument{
		KeyDefault: {Title: title, Description: description, Language: sourceLang},
	}
}

// LoadMetadata reads a metadata document from a JSON file.
func LoadMetadata(path string) (MetadataDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("metadata: read %s: %w", path, err)
	}
	var doc MetadataDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("metadata: parse %s: %w", path, err)
	}
	return doc, nil
}

// SaveMetadata writes the document as indented JSON. Non-ASCII text (titles
// and descriptions are usually not English) is written literally, not escaped.
func SaveMetadata(path string, doc MetadataDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metadata: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("metadata: write %s: %w", path, err)
	}
	return nil
}

// DefaultTitle returns the default entry's title, falling back to the video's
// base filename with the extension stripped.
func DefaultTitle(doc MetadataDocument, videoPath string) string {
	if title := doc[KeyDefault].Title; title != "" {
		return title
	}
	base := filepath.Base(videoPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DefaultDescription returns the default entry's description ("" when absent).
func DefaultDescription(doc MetadataDocument) string {
	return doc[KeyDefault].Description
}

// DefaultLanguage returns the document's source language code, or "en".
func DefaultLanguage(doc MetadataDocument) string {
	if lang := doc[KeyDefault].Language; lang != "" {
		return lang
	}
	return DefaultLanguageFallback
}
