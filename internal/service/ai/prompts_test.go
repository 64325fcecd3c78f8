package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/service/ai"
)

func TestGetTranslateTextPrompt_NamedSource(t *testing.T) {
	prompt := ai.GetTranslateTextPrompt("Spanish", "English")
	require.Contains(t, prompt, "<source_language>Spanish</source_language>")
	require.Contains(t, prompt, "<target_language>English</target_language>")
	require.Contains(t, prompt, "Output ONLY the translated text")
}

func TestGetTranslateTextPrompt_AutoDetect(t *testing.T) {
	prompt := ai.GetTranslateTextPrompt("", "Nepali")
	require.Contains(t, prompt, "detect automatically")
	require.NotContains(t, prompt, "<source_language></source_language>")
}

func TestGetTranslateDocumentPrompt_PreservesParagraphs(t *testing.T) {
	prompt := ai.GetTranslateDocumentPrompt("German", "English")
	require.Contains(t, prompt, "paragraph structure")
	require.Contains(t, prompt, "<source_language>German</source_language>")
}

func TestGetTranslateDocumentPrompt_AutoDetectIsExplicit(t *testing.T) {
	prompt := ai.GetTranslateDocumentPrompt("", "English")
	require.Contains(t, prompt, "detect the source language automatically")
}

func TestGetTranslateFilePrompt(t *testing.T) {
	prompt := ai.GetTranslateFilePrompt("French")
	require.Contains(t, prompt, "French")
	require.Contains(t, prompt, "Detect the source language automatically")
}

func TestGetRefinePrompt_AllModes(t *testing.T) {
	tests := []struct {
		mode     ai.RefineMode
		contains string
	}{
		{ai.RefinePolish, "fluency and grammar"},
		{ai.RefineFormal, "formal register"},
		{ai.RefineCasual, "conversational register"},
		{ai.RefineSummarize, "concise summary"},
	}
	for _, tt := range tests {
		prompt := ai.GetRefinePrompt(tt.mode)
		require.Contains(t, prompt, tt.contains, "mode %s", tt.mode)
		require.Contains(t, prompt, "same language as the input")
	}
}

func TestValidRefineMode(t *testing.T) {
	require.True(t, ai.ValidRefineMode(ai.RefinePolish))
	require.True(t, ai.ValidRefineMode(ai.RefineSummarize))
	require.False(t, ai.ValidRefineMode(ai.RefineMode("shouty")))
	require.False(t, ai.ValidRefineMode(ai.RefineMode("")))
}

func TestGetTranscribePrompt_Verbatim(t *testing.T) {
	prompt := ai.GetTranscribePrompt()
	require.Contains(t, prompt, "verbatim")
	require.Contains(t, prompt, "Do not translate")
}
