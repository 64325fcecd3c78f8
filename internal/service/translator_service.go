package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/model"
	"lingua/backend/internal/service/ai"
)

// documentExcerptLen bounds the stored source/translated text of
// document-class records. Full document content is intentionally not
// retained; storage growth stays proportional to the number of records.
const documentExcerptLen = 100

// batchConcurrency bounds parallel remote calls in TranslateBatch.
const batchConcurrency = 4

// InsightsFallback is returned when insight generation fails; the
// insights path is a best-effort enhancement and never surfaces errors.
const InsightsFallback = "Keep translating to unlock personalized insights about your activity."

// BatchResult is one target language's outcome in a batch translation.
type BatchResult struct {
	TargetLang     string `json:"targetLang"`
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// TranslatorService orchestrates task-typed requests against the remote
// model capability. Every call follows the same shape: build the task
// instruction, wait on the rate limiter, issue a single generate call,
// trim the result and treat an empty result like a transport failure.
// Successful translate operations append to the history log.
type TranslatorService interface {
	// TranslateText translates plain text and logs a full-text record of
	// kind text.
	TranslateText(ctx context.Context, text string, source model.SourceLanguage, targetLang string) (string, error)
	// TranslateTranscript is the voice flow: same prompt contract as
	// TranslateText but the record is tagged voice.
	TranslateTranscript(ctx context.Context, text string, source model.SourceLanguage, targetLang string) (string, error)
	// TranslateDocument translates document text preserving paragraph
	// structure and logs a truncated record of kind document.
	TranslateDocument(ctx context.Context, content string, source model.SourceLanguage, targetLang string) (string, error)
	// TranslateFile submits an opaque binary artifact inline. Source
	// detection is implicit; logging matches TranslateDocument.
	TranslateFile(ctx context.Context, base64Payload, mimeType, targetLang string) (string, error)
	// TranslateBatch translates one text into several target languages
	// concurrently. Per-language failures are reported in the results.
	TranslateBatch(ctx context.Context, text string, source model.SourceLanguage, targetLangs []string) ([]BatchResult, error)
	// Refine rewrites text in one of the fixed modes. An empty model
	// result returns the input unchanged; refinement never logs.
	Refine(ctx context.Context, text string, mode ai.RefineMode) (string, error)
	// Transcribe converts an audio payload to verbatim text. Does not
	// log; callers feed the result into a translation flow.
	Transcribe(ctx context.Context, audio []byte, format string) (string, error)
	// SynthesizeSpeech returns raw PCM speech for the text.
	SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error)
	// GenerateInsights produces usage-insight text from an analytics
	// snapshot, falling back to a fixed string on any failure.
	GenerateInsights(ctx context.Context, snapshot model.AnalyticsView) string
}

type translatorService struct {
	provider    ai.Provider
	history     HistoryService
	rateLimiter *ai.RateLimiter
}

// NewTranslatorService creates the orchestrator over an injected provider
// and history log.
func NewTranslatorService(provider ai.Provider, history HistoryService, rateLimiter *ai.RateLimiter) TranslatorService {
	return &translatorService{
		provider:    provider,
		history:     history,
		rateLimiter: rateLimiter,
	}
}

// complete runs the shared call shape for text prompts.
func (s *translatorService) complete(ctx context.Context, systemPrompt, content string) (string, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	result, err := s.provider.Complete(ctx, systemPrompt, content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	return strings.TrimSpace(result), nil
}

func (s *translatorService) translateText(ctx context.Context, kind model.RecordKind, text string, source model.SourceLanguage, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty text", ErrInvalid)
	}

	prompt := ai.GetTranslateTextPrompt(source.Name(), model.LanguageName(targetLang))
	translated, err := s.complete(ctx, prompt, text)
	if err != nil {
		logger.Warn("translate failed", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "kind", kind, "target_lang", targetLang, "error", err)
		return "", err
	}
	if translated == "" {
		return "", fmt.Errorf("%w: empty response", ErrRemoteCall)
	}

	s.logRecord(ctx, model.ActivityRecord{
		SourceText:     text,
		TranslatedText: translated,
		SourceLang:     source.Code(),
		TargetLang:     targetLang,
		Kind:           kind,
	})
	return translated, nil
}

func (s *translatorService) TranslateText(ctx context.Context, text string, source model.SourceLanguage, targetLang string) (string, error) {
	return s.translateText(ctx, model.KindText, text, source, targetLang)
}

func (s *translatorService) TranslateTranscript(ctx context.Context, text string, source model.SourceLanguage, targetLang string) (string, error) {
	return s.translateText(ctx, model.KindVoice, text, source, targetLang)
}

func (s *translatorService) TranslateDocument(ctx context.Context, content string, source model.SourceLanguage, targetLang string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty document", ErrInvalid)
	}

	prompt := ai.GetTranslateDocumentPrompt(source.Name(), model.LanguageName(targetLang))
	translated, err := s.complete(ctx, prompt, content)
	if err != nil {
		logger.Warn("document translate failed", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "target_lang", targetLang, "error", err)
		return "", err
	}
	if translated == "" {
		return "", fmt.Errorf("%w: empty response", ErrRemoteCall)
	}

	s.logRecord(ctx, model.ActivityRecord{
		SourceText:     truncateExcerpt(content),
		TranslatedText: truncateExcerpt(translated),
		SourceLang:     source.Code(),
		TargetLang:     targetLang,
		Kind:           model.KindDocument,
	})
	return translated, nil
}

func (s *translatorService) TranslateFile(ctx context.Context, base64Payload, mimeType, targetLang string) (string, error) {
	if base64Payload == "" {
		return "", fmt.Errorf("%w: empty payload", ErrInvalid)
	}
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}

	// No mime allow-list here: anything is sent and a remote rejection
	// surfaces as the call failure.
	instruction := ai.GetTranslateFilePrompt(model.LanguageName(targetLang))
	result, err := s.provider.CompleteWithFile(ctx, instruction, mimeType, base64Payload)
	if err != nil {
		logger.Warn("file translate failed", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "mime", mimeType, "target_lang", targetLang, "error", err)
		return "", fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	translated := strings.TrimSpace(result)
	if translated == "" {
		return "", fmt.Errorf("%w: empty response", ErrRemoteCall)
	}

	s.logRecord(ctx, model.ActivityRecord{
		SourceText:     truncateExcerpt("[" + mimeType + " upload]"),
		TranslatedText: truncateExcerpt(translated),
		SourceLang:     model.AutoCode,
		TargetLang:     targetLang,
		Kind:           model.KindDocument,
	})
	return translated, nil
}

func (s *translatorService) TranslateBatch(ctx context.Context, text string, source model.SourceLanguage, targetLangs []string) ([]BatchResult, error) {
	if strings.TrimSpace(text) == "" || len(targetLangs) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrInvalid)
	}

	results := make([]BatchResult, len(targetLangs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, lang := range targetLangs {
		g.Go(func() error {
			translated, err := s.TranslateText(gctx, text, source, lang)
			if err != nil {
				results[i] = BatchResult{TargetLang: lang, Error: err.Error()}
				return nil
			}
			results[i] = BatchResult{TargetLang: lang, TranslatedText: translated}
			return nil
		})
	}

	_ = g.Wait()
	return results, nil
}

func (s *translatorService) Refine(ctx context.Context, text string, mode ai.RefineMode) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty text", ErrInvalid)
	}
	if !ai.ValidRefineMode(mode) {
		return "", fmt.Errorf("%w: unknown refine mode %q", ErrInvalid, mode)
	}

	refined, err := s.complete(ctx, ai.GetRefinePrompt(mode), text)
	if err != nil {
		return "", err
	}
	if refined == "" {
		// Never surface empty output downstream; the prior text stands.
		return text, nil
	}
	return refined, nil
}

func (s *translatorService) Transcribe(ctx context.Context, audio []byte, format string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("%w: empty audio", ErrInvalid)
	}
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}

	result, err := s.provider.Transcribe(ctx, ai.GetTranscribePrompt(), format, base64.StdEncoding.EncodeToString(audio))
	if err != nil {
		logger.Warn("transcribe failed", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	text := strings.TrimSpace(result)
	if text == "" {
		return "", fmt.Errorf("%w: empty transcript", ErrRemoteCall)
	}
	return text, nil
}

func (s *translatorService) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalid)
	}
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}

	pcm, err := s.provider.Speech(ctx, text, voice)
	if err != nil {
		logger.Warn("speech synthesis failed", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("%w: no audio payload in response", ErrRemoteCall)
	}
	return pcm, nil
}

func (s *translatorService) GenerateInsights(ctx context.Context, snapshot model.AnalyticsView) string {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return InsightsFallback
	}

	insight, err := s.complete(ctx, ai.GetInsightsPrompt(), string(raw))
	if err != nil || insight == "" {
		logger.Debug("insights fallback", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "error", err)
		return InsightsFallback
	}
	return insight
}

// logRecord appends after a successful remote call. A failed append does
// not fail the operation that produced the translation.
func (s *translatorService) logRecord(ctx context.Context, record model.ActivityRecord) {
	if _, err := s.history.Append(ctx, record); err != nil {
		logger.Warn("history write failed", "module", "service", "action", "save", "resource", "history", "result", "failed", "error", err)
	}
}

// truncateExcerpt caps document-class stored text at documentExcerptLen
// runes plus an ellipsis.
func truncateExcerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= documentExcerptLen {
		return text
	}
	return string(runes[:documentExcerptLen]) + "..."
}
