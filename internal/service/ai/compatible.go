package ai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompatibleProvider implements Provider for OpenAI-compatible APIs.
// This supports services like OpenRouter, Azure OpenAI, Ollama, etc.
// It reuses the OpenAI wire shapes against a custom base URL; whether a
// given deployment actually honors the file or audio shapes is up to the
// remote end, and a rejection surfaces as the call error.
type CompatibleProvider struct {
	inner *OpenAIProvider
}

// NewCompatibleProvider creates a new OpenAI-compatible provider.
func NewCompatibleProvider(apiKey, baseURL, model string) *CompatibleProvider {
	return &CompatibleProvider{
		inner: &OpenAIProvider{
			client: openai.NewClient(
				option.WithAPIKey(apiKey),
				option.WithBaseURL(baseURL),
			),
			model: model,
		},
	}
}

// Name returns the provider name.
func (p *CompatibleProvider) Name() string {
	return ProviderCompatible
}

// Complete generates a response for a plain-text prompt.
func (p *CompatibleProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	return p.inner.Complete(ctx, systemPrompt, content)
}

// CompleteWithFile submits an instruction plus an inline binary payload.
func (p *CompatibleProvider) CompleteWithFile(ctx context.Context, instruction, mimeType, base64Data string) (string, error) {
	return p.inner.CompleteWithFile(ctx, instruction, mimeType, base64Data)
}

// Transcribe submits inline audio with a transcription instruction.
func (p *CompatibleProvider) Transcribe(ctx context.Context, instruction, format string, audioBase64 string) (string, error) {
	return p.inner.Transcribe(ctx, instruction, format, audioBase64)
}

// Speech requests audio-modality output.
func (p *CompatibleProvider) Speech(ctx context.Context, text, voice string) ([]byte, error) {
	return p.inner.Speech(ctx, text, voice)
}
