package ai

import (
	"context"
	"errors"
)

// Provider is the remote generative-model capability: one-shot generate
// calls over text, inline binary payloads, and audio. An empty result is
// reported as-is; callers decide whether empty output is an error.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Complete generates a response for a plain-text prompt.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
	// CompleteWithFile generates a response for an instruction plus an
	// inline base64-encoded binary payload (image or document).
	CompleteWithFile(ctx context.Context, instruction, mimeType, base64Data string) (string, error)
	// Transcribe converts an inline audio payload into verbatim text.
	Transcribe(ctx context.Context, instruction, format string, audioBase64 string) (string, error)
	// Speech synthesizes raw PCM audio (16-bit LE, 24000 Hz, mono) for
	// the given text.
	Speech(ctx context.Context, text, voice string) ([]byte, error)
}

// Config holds the configuration for an AI provider.
type Config struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai, required for compatible
	Model    string
	Voice    string // speech synthesis voice hint
}

// ProviderType constants
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider  = errors.New("invalid provider")
	ErrMissingAPIKey    = errors.New("API key is required")
	ErrMissingBaseURL   = errors.New("base URL is required for compatible provider")
	ErrMissingModel     = errors.New("model is required")
	ErrAudioUnsupported = errors.New("provider does not support audio")
)

// NewProvider creates a new AI provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, ErrInvalidProvider
	}
}
