package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeJobFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "job.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeVideoFile(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.mp4"), []byte("x"), 0644))
}

func TestLoadJobConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	writeVideoFile(t, dir)
	path := writeJobFile(t, dir, `{"video":"clip.mp4","title":"제목"}`)

	job, err := LoadJobConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultSourceLang, job.SourceLang)
	require.Equal(t, PrivacyPrivate, job.Privacy)
	require.Equal(t, DefaultMaxParallel, job.MaxParallel)
	require.Equal(t, filepath.Join(dir, "clip.mp4"), job.Video)
	require.Empty(t, job.UnknownLangs)
	// Whole catalog minus the source language.
	require.Len(t, job.TargetLangs, len(Languages)-1)
	require.NotContains(t, job.TargetLangs, DefaultSourceLang)
}

func TestLoadJobConfigExplicitLangs(t *testing.T) {
	dir := t.TempDir()
	writeVideoFile(t, dir)
	path := writeJobFile(t, dir, `{"video":"clip.mp4","title":"t","source_lang":"en","langs":["en","ja","xx","fr"]}`)

	job, err := LoadJobConfig(path)
	require.NoError(t, err)
	require.Equal(t, []string{"ja", "fr"}, job.TargetLangs)
	require.Equal(t, []string{"xx"}, job.UnknownLangs)
}

func TestLoadJobConfigMissingRequired(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadJobConfig(writeJobFile(t, dir, `{"title":"t"}`))
	require.Error(t, err)

	_, err = LoadJobConfig(writeJobFile(t, dir, `{"video":"clip.mp4"}`))
	require.Error(t, err)
}

func TestLoadJobConfigInvalidPrivacy(t *testing.T) {
	dir := t.TempDir()
	writeVideoFile(t, dir)
	_, err := LoadJobConfig(writeJobFile(t, dir, `{"video":"clip.mp4","title":"t","privacy":"secret"}`))
	require.ErrorContains(t, err, "privacy")
}

func TestLoadJobConfigMissingVideoFile(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadJobConfig(writeJobFile(t, dir, `{"video":"absent.mp4","title":"t"}`))
	require.ErrorContains(t, err, "video file not found")
}

func TestLoadJobConfigPromptTemplate(t *testing.T) {
	dir := t.TempDir()
	writeVideoFile(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prompt.txt"), []byte("custom {text}"), 0644))
	path := writeJobFile(t, dir, `{"video":"clip.mp4","title":"t","prompt":"prompt.txt"}`)

	job, err := LoadJobConfig(path)
	require.NoError(t, err)
	require.Equal(t, "custom {text}", job.Template)
}

func TestLoadJobConfigMissingPromptFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeVideoFile(t, dir)
	path := writeJobFile(t, dir, `{"video":"clip.mp4","title":"t","prompt":"absent.txt"}`)

	job, err := LoadJobConfig(path)
	require.NoError(t, err)
	// Unreadable template means the built-in one.
	require.Empty(t, job.Template)
}

func TestLoadJobConfigBadJSON(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadJobConfig(writeJobFile(t, dir, `{`))
	require.Error(t, err)
}
