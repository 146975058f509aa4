package publish

import (
	"testing"

	"github.com/stretchr/testify/require"
	youtube "google.golang.org/api/youtube/v3"

	"github.com/anatolykoptev/go_publish/internal/engine"
)

func TestSupportedSet(t *testing.T) {
	resp := &youtube.I18nLanguageListResponse{Items: []*youtube.I18nLanguage{
		{Id: "en"},
		{Id: "zh-Hans"},
		{Id: ""},
		nil,
	}}

	set := supportedSet(resp)
	require.Len(t, set, 2)
	require.True(t, set["en"])
	require.True(t, set["zh-Hans"])
}

func TestSupportedSetEmptyResponseFallsBack(t *testing.T) {
	set := supportedSet(&youtube.I18nLanguageListResponse{})
	require.Equal(t, engine.FallbackSupported(), set)

	set = supportedSet(nil)
	require.True(t, set["en"])
}
