//go:build e2e

package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/brainsync/pkg/brainsdk"
)

func TestTranslationHistory(t *testing.T) {
	baseURL := setupAPI(t, relaxedLimits())
	client := brainsdk.NewSDKClient(baseURL)

	first := createText(t, client, "text", "Hello World")
	second := createText(t, client, "text", "goodbye")

	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, "en", first.SourceLanguage)
	require.Equal(t, "hi", first.TargetLanguage)
	require.Nil(t, first.BrailleOutput)

	t.Run("newest first with limit", func(t *testing.T) {
		got, err := client.ListTranslations(t.Context(), brainsdk.ListOptions{Limit: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, second.ID, got[0].ID)
	})

	t.Run("case-insensitive search", func(t *testing.T) {
		got, err := client.ListTranslations(t.Context(), brainsdk.ListOptions{Search: "hello"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, first.ID, got[0].ID)
	})

	t.Run("regex characters are literal", func(t *testing.T) {
		got, err := client.ListTranslations(t.Context(), brainsdk.ListOptions{Search: "h.llo"})
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("update then search braille", func(t *testing.T) {
		braille := "⠓⠑⠇⠇⠕"
		updated, err := client.UpdateTranslation(t.Context(), first.ID, brainsdk.UpdateTranslationRequest{
			BrailleOutput: &braille,
		})
		require.NoError(t, err)
		require.Equal(t, braille, *updated.BrailleOutput)
		require.False(t, updated.UpdatedAt.Before(first.UpdatedAt))

		got, err := client.ListTranslations(t.Context(), brainsdk.ListOptions{Search: braille})
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("delete once", func(t *testing.T) {
		require.NoError(t, client.DeleteTranslation(t.Context(), second.ID))

		err := client.DeleteTranslation(t.Context(), second.ID)
		requireAPIError(t, err, http.StatusNotFound, brainsdk.ErrorCodeNotFound)
	})

	t.Run("unknown ids", func(t *testing.T) {
		err := client.DeleteTranslation(t.Context(), "000000000000000000000000")
		requireAPIError(t, err, http.StatusNotFound, brainsdk.ErrorCodeNotFound)

		err = client.DeleteTranslation(t.Context(), "not-an-object-id")
		requireAPIError(t, err, http.StatusNotFound, brainsdk.ErrorCodeNotFound)
	})
}

func TestOwnedTranslation(t *testing.T) {
	baseURL := setupAPI(t, relaxedLimits())
	client := brainsdk.NewSDKClient(baseURL)
	session := signupUser(t, client)

	text := "owned"
	tr, err := session.CreateTranslation(t.Context(), brainsdk.CreateTranslationRequest{
		SourceText:      &text,
		TranslationType: "microphone",
	})
	require.NoError(t, err)
	require.Equal(t, "microphone", tr.TranslationType)
}

func TestTranslationStats(t *testing.T) {
	baseURL := setupAPI(t, relaxedLimits())
	client := brainsdk.NewSDKClient(baseURL)

	stats, err := client.GetStats(t.Context())
	require.NoError(t, err)
	require.Zero(t, stats.Total)
	require.Len(t, stats.ByMethod, 6)

	createText(t, client, "text", "a")
	createText(t, client, "image", "b")
	createText(t, client, "text", "c")
	createText(t, client, "sign-language", "d")

	stats, err = client.GetStats(t.Context())
	require.NoError(t, err)
	require.EqualValues(t, 4, stats.Total)
	require.Equal(t, map[string]int64{
		"text":          2,
		"image":         1,
		"audio":         0,
		"microphone":    0,
		"file":          0,
		"braille":       0,
		"sign-language": 1,
	}, stats.ByMethod)
}
