package ai

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider implements Provider for the OpenAI API. This is the only
// backend with the full multimodal surface (text, inline files, audio in,
// pcm16 audio out).
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(apiKey, baseURL, model string) *OpenAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return ProviderOpenAI
}

// Complete generates a response for a plain-text prompt.
func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(content))

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// CompleteWithFile submits an instruction plus an inline binary payload.
// Images go through an image part; everything else rides as a file part.
// There is no client-side mime allow-list: unsupported types are sent and
// the remote rejection surfaces as the call error.
func (p *OpenAIProvider) CompleteWithFile(ctx context.Context, instruction, mimeType, base64Data string) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64Data)

	var payload openai.ChatCompletionContentPartUnionParam
	if isImageMime(mimeType) {
		payload = openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: dataURL,
		})
	} else {
		payload = openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
			FileData: openai.String(dataURL),
			Filename: openai.String("upload"),
		})
	}

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(instruction),
				payload,
			}),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Transcribe submits inline audio with a transcription instruction.
// Format is the container name the API expects (wav or mp3).
func (p *OpenAIProvider) Transcribe(ctx context.Context, instruction, format string, audioBase64 string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(instruction),
				openai.InputAudioContentPart(openai.ChatCompletionContentPartInputAudioInputAudioParam{
					Data:   audioBase64,
					Format: format,
				}),
			}),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Speech requests audio-modality output. pcm16 responses are raw 16-bit
// little-endian samples at 24000 Hz mono.
func (p *OpenAIProvider) Speech(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:      openai.ChatModel(p.model),
		Modalities: []string{"text", "audio"},
		Audio: openai.ChatCompletionAudioParam{
			Format: "pcm16",
			Voice:  openai.ChatCompletionAudioParamVoice(voice),
		},
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Audio.Data == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(resp.Choices[0].Message.Audio.Data)
}

func isImageMime(mimeType string) bool {
	switch mimeType {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
		return true
	}
	return false
}
