package ai

import "fmt"

// RefineMode selects the instruction template for text refinement.
type RefineMode string

const (
	RefinePolish    RefineMode = "polish"
	RefineFormal    RefineMode = "formal"
	RefineCasual    RefineMode = "casual"
	RefineSummarize RefineMode = "summarize"
)

// ValidRefineMode reports whether mode names a known template.
func ValidRefineMode(mode RefineMode) bool {
	switch mode {
	case RefinePolish, RefineFormal, RefineCasual, RefineSummarize:
		return true
	}
	return false
}

// GetTranslateTextPrompt returns the system prompt for plain-text
// translation. An empty sourceName instructs the model to detect the
// source language itself.
func GetTranslateTextPrompt(sourceName, targetName string) string {
	sourceTag := "<source_language>detect automatically</source_language>"
	if sourceName != "" {
		sourceTag = fmt.Sprintf("<source_language>%s</source_language>", sourceName)
	}

	return fmt.Sprintf(`You are an expert translator. Translate the user's text into the target language.

<context>
%s
<target_language>%s</target_language>
</context>

<instructions>
1. You MUST translate into the language specified in <target_language>. Responses in other languages are invalid
2. Output ONLY the translated text, nothing else
3. Preserve the original meaning and tone
4. Keep proper nouns and brand names unchanged
5. NO explanations, NO notes, NO markdown formatting
6. NO leading or trailing newlines
</instructions>`, sourceTag, targetName)
}

// GetTranslateDocumentPrompt returns the system prompt for document
// translation. Paragraph structure must survive the round trip. An empty
// sourceName instructs explicit automatic source-language detection.
func GetTranslateDocumentPrompt(sourceName, targetName string) string {
	sourceTag := "<source_language>unknown - you MUST detect the source language automatically</source_language>"
	if sourceName != "" {
		sourceTag = fmt.Sprintf("<source_language>%s</source_language>", sourceName)
	}

	return fmt.Sprintf(`You are an expert translator. Translate the user's document into the target language.

<context>
%s
<target_language>%s</target_language>
</context>

<instructions>
1. You MUST translate into the language specified in <target_language>. Responses in other languages are invalid
2. Preserve the paragraph structure of the original exactly: same number of paragraphs, same line breaks
3. Output ONLY the translated document, nothing else
4. Keep proper nouns, numbers and URLs unchanged
5. NEVER wrap output in markdown code blocks
</instructions>`, sourceTag, targetName)
}

// GetTranslateFilePrompt returns the instruction sent alongside an inline
// binary artifact. Source-language detection is implicit.
func GetTranslateFilePrompt(targetName string) string {
	return fmt.Sprintf(`Extract all text from the attached file and translate it into %s.

<instructions>
1. Detect the source language automatically
2. Preserve the paragraph structure of the extracted text
3. Output ONLY the translated text, nothing else
4. NO explanations, NO markdown formatting
</instructions>`, targetName)
}

var refineInstructions = map[RefineMode]string{
	RefinePolish:    "Improve the fluency and grammar of the text while preserving its exact meaning.",
	RefineFormal:    "Rewrite the text in a more professional, formal register.",
	RefineCasual:    "Rewrite the text in a more relaxed, conversational register.",
	RefineSummarize: "Write a concise summary of the text in the same language as the input.",
}

// GetRefinePrompt returns the system prompt for one of the fixed
// refinement modes.
func GetRefinePrompt(mode RefineMode) string {
	return fmt.Sprintf(`You are an expert editor. %s

<instructions>
1. Keep the output in the same language as the input
2. Output ONLY the rewritten text, nothing else
3. NO explanations, NO notes, NO markdown formatting
</instructions>`, refineInstructions[mode])
}

// GetTranscribePrompt returns the instruction sent alongside inline audio.
func GetTranscribePrompt() string {
	return `Transcribe the attached audio verbatim.

<instructions>
1. Output ONLY the spoken words, nothing else
2. Do not translate, correct or annotate the speech
3. NO timestamps, NO speaker labels
</instructions>`
}

// GetInsightsPrompt returns the system prompt for usage-insight text
// generated from an analytics snapshot.
func GetInsightsPrompt() string {
	return `You are a friendly product assistant. The user message contains a JSON snapshot of their translation activity.

<instructions>
1. Write 2-3 short sentences of encouraging insight about their usage patterns
2. Mention their most used target language and overall activity if present
3. Plain text only, NO markdown formatting
</instructions>`
}
