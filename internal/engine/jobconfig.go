package engine

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Privacy levels accepted by the hosting backend.
const (
	PrivacyPublic   = "public"
	PrivacyUnlisted = "unlisted"
	PrivacyPrivate  = "private"
)

// DefaultSourceLang is the source language assumed when the job doesn't set one.
const DefaultSourceLang = "ko"

// JobConfig is the per-run publishing job, loaded from a JSON file.
// Relative paths are resolved against the config file's directory.
type JobConfig struct {
	Video       string   `json:"video"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SourceLang  string   `json:"source_lang"`
	Langs       []string `json:"langs"`       // empty = whole catalog
	Privacy     string   `json:"privacy"`     // public|unlisted|private
	Model       string   `json:"model"`       // "" = engine default
	MaxParallel int      `json:"max_workers"` // <=0 = DefaultMaxParallel
	Prompt      string   `json:"prompt"`      // optional template file

	// UnknownLangs holds requested codes dropped because they aren't in the
	// catalog; the caller warns about them.
	UnknownLangs []string `json:"-"`

	// TargetLangs is Langs minus unknown codes and the source language.
	TargetLangs []string `json:"-"`

	// Template is the loaded prompt template ("" = built-in).
	Template string `json:"-"`
}

// LoadJobConfig reads, validates and normalizes a job config file.
// Missing file, unreadable JSON, or missing required fields are fatal.
func LoadJobConfig(path string) (*JobConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var job JobConfig
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if job.Video == "" || job.Title == "" {
		return nil, fmt.Errorf("config: %s must set both \"video\" and \"title\"", path)
	}
	if err := job.normalize(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return &job, nil
}

// normalize applies defaults, resolves paths, and derives the target set.
func (job *JobConfig) normalize(baseDir string) error {
	if job.SourceLang == "" {
		job.SourceLang = DefaultSourceLang
	}
	if job.Privacy == "" {
		job.Privacy = PrivacyPrivate
	}
	switch job.Privacy {
	case PrivacyPublic, PrivacyUnlisted, PrivacyPrivate:
	default:
		return fmt.Errorf("config: invalid privacy %q (want public, unlisted or private)", job.Privacy)
	}
	if job.MaxParallel <= 0 {
		job.MaxParallel = DefaultMaxParallel
	}

	job.Video = resolvePath(baseDir, job.Video)
	if _, err := os.Stat(job.Video); err != nil {
		return fmt.Errorf("config: video file not found: %s", job.Video)
	}

	if job.Prompt != "" {
		job.Prompt = resolvePath(baseDir, job.Prompt)
		template, err := LoadPromptTemplate(job.Prompt)
		if err != nil {
			slog.Warn("config: prompt template unreadable, using built-in",
				slog.String("path", job.Prompt),
				slog.Any("error", err))
		} else {
			job.Template = template
		}
	}

	requested := job.Langs
	if len(requested) == 0 {
		requested = AllLanguageCodes()
	}
	known, unknown := FilterKnown(requested)
	job.UnknownLangs = unknown

	job.TargetLangs = job.TargetLangs[:0]
	for _, lang := range known {
		if lang != job.SourceLang {
			job.TargetLangs = append(job.TargetLangs, lang)
		}
	}
	return nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
