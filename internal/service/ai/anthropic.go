package ai

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 4096

// AnthropicProvider implements Provider for the Anthropic API. Text and
// inline-file generation are supported; the API has no audio modality,
// so Transcribe and Speech report ErrAudioUnsupported.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropicProvider creates a new Anthropic provider.
func NewAnthropicProvider(apiKey, baseURL, model string) *AnthropicProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicProvider{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

// Name returns the provider name.
func (p *AnthropicProvider) Name() string {
	return ProviderAnthropic
}

// Complete generates a response for a plain-text prompt.
func (p *AnthropicProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(content)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}
	return extractText(resp), nil
}

// CompleteWithFile submits an instruction plus an inline binary payload.
// Images use an image block, PDFs a document block; other mime types are
// still sent as documents and any remote rejection surfaces as the error.
func (p *AnthropicProvider) CompleteWithFile(ctx context.Context, instruction, mimeType, base64Data string) (string, error) {
	var payload anthropic.ContentBlockParamUnion
	if isImageMime(mimeType) {
		payload = anthropic.NewImageBlockBase64(mimeType, base64Data)
	} else {
		payload = anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
			Data: base64Data,
		})
	}

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(payload, anthropic.NewTextBlock(instruction)),
		},
	})
	if err != nil {
		return "", err
	}
	return extractText(resp), nil
}

// Transcribe is not available on this provider.
func (p *AnthropicProvider) Transcribe(ctx context.Context, instruction, format string, audioBase64 string) (string, error) {
	return "", ErrAudioUnsupported
}

// Speech is not available on this provider.
func (p *AnthropicProvider) Speech(ctx context.Context, text, voice string) ([]byte, error) {
	return nil, ErrAudioUnsupported
}

// extractText returns the first text block of a response, skipping
// thinking blocks.
func extractText(resp *anthropic.Message) string {
	for _, block := range resp.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			return v.Text
		}
	}
	return ""
}
