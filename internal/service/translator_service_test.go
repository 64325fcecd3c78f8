package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/model"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/service"
	"lingua/backend/internal/service/ai"
)

// providerStub is a canned-response ai.Provider.
type providerStub struct {
	completeResult string
	completeErr    error
	fileResult     string
	fileErr        error
	transcript     string
	transcriptErr  error
	speech         []byte
	speechErr      error

	lastSystemPrompt string
	lastContent      string
	lastMimeType     string
	calls            int
}

func (p *providerStub) Name() string { return "stub" }

func (p *providerStub) Complete(_ context.Context, systemPrompt, content string) (string, error) {
	p.calls++
	p.lastSystemPrompt = systemPrompt
	p.lastContent = content
	return p.completeResult, p.completeErr
}

func (p *providerStub) CompleteWithFile(_ context.Context, _, mimeType, _ string) (string, error) {
	p.calls++
	p.lastMimeType = mimeType
	return p.fileResult, p.fileErr
}

func (p *providerStub) Transcribe(_ context.Context, _, _ string, _ string) (string, error) {
	p.calls++
	return p.transcript, p.transcriptErr
}

func (p *providerStub) Speech(_ context.Context, _, _ string) ([]byte, error) {
	p.calls++
	return p.speech, p.speechErr
}

func newTranslator(provider ai.Provider) (service.TranslatorService, service.HistoryService) {
	history := service.NewHistoryService(repository.NewMemoryBlobStore())
	return service.NewTranslatorService(provider, history, ai.NewRateLimiter(100)), history
}

func TestTranslatorService_TranslateText(t *testing.T) {
	provider := &providerStub{completeResult: "  Hallo Welt  "}
	svc, history := newTranslator(provider)

	out, err := svc.TranslateText(context.Background(), "hello world", model.NamedSource("en"), "de")
	require.NoError(t, err, "TranslateText should succeed")
	require.Equal(t, "Hallo Welt", out, "result should be trimmed")
	require.Equal(t, "hello world", provider.lastContent)

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1, "a successful translation should be logged")
	require.Equal(t, model.KindText, records[0].Kind)
	require.Equal(t, "hello world", records[0].SourceText, "text records keep the full text")
	require.Equal(t, "Hallo Welt", records[0].TranslatedText)
	require.Equal(t, "en", records[0].SourceLang)
	require.Equal(t, "de", records[0].TargetLang)
}

func TestTranslatorService_TranslateText_EmptyInput(t *testing.T) {
	provider := &providerStub{completeResult: "x"}
	svc, _ := newTranslator(provider)

	_, err := svc.TranslateText(context.Background(), "   ", model.AutoDetect(), "de")
	require.ErrorIs(t, err, service.ErrInvalid, "blank input should be rejected")
	require.Zero(t, provider.calls, "no remote call for invalid input")
}

func TestTranslatorService_TranslateText_EmptyModelOutput(t *testing.T) {
	provider := &providerStub{completeResult: "   "}
	svc, history := newTranslator(provider)

	_, err := svc.TranslateText(context.Background(), "hello", model.AutoDetect(), "de")
	require.ErrorIs(t, err, service.ErrRemoteCall, "empty model output is a remote failure")

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, records, "failed translations are not logged")
}

func TestTranslatorService_TranslateTranscript_VoiceKind(t *testing.T) {
	provider := &providerStub{completeResult: "salut"}
	svc, history := newTranslator(provider)

	_, err := svc.TranslateTranscript(context.Background(), "hi", model.AutoDetect(), "fr")
	require.NoError(t, err)

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, model.KindVoice, records[0].Kind, "transcript translations are tagged voice")
	require.Equal(t, model.AutoCode, records[0].SourceLang, "auto detection stores the auto code")
}

func TestTranslatorService_TranslateDocument_TruncatesRecord(t *testing.T) {
	long := strings.Repeat("a", 250)
	provider := &providerStub{completeResult: strings.Repeat("b", 250)}
	svc, history := newTranslator(provider)

	out, err := svc.TranslateDocument(context.Background(), long, model.AutoDetect(), "es")
	require.NoError(t, err)
	require.Len(t, out, 250, "the returned translation is never truncated")

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, model.KindDocument, records[0].Kind)
	require.Equal(t, strings.Repeat("a", 100)+"...", records[0].SourceText)
	require.Equal(t, strings.Repeat("b", 100)+"...", records[0].TranslatedText)
}

func TestTranslatorService_TranslateDocument_ShortTextNotTruncated(t *testing.T) {
	provider := &providerStub{completeResult: "kurz"}
	svc, history := newTranslator(provider)

	_, err := svc.TranslateDocument(context.Background(), "short document", model.NamedSource("en"), "de")
	require.NoError(t, err)

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "short document", records[0].SourceText, "no ellipsis under the cap")
}

func TestTranslatorService_TranslateFile(t *testing.T) {
	provider := &providerStub{fileResult: "translated file"}
	svc, history := newTranslator(provider)

	// Any declared mime type is forwarded; there is no local allow-list.
	out, err := svc.TranslateFile(context.Background(), "AAAA", "application/x-unknown", "ja")
	require.NoError(t, err)
	require.Equal(t, "translated file", out)
	require.Equal(t, "application/x-unknown", provider.lastMimeType)

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, model.KindDocument, records[0].Kind)
	require.Equal(t, model.AutoCode, records[0].SourceLang, "file source is always detected remotely")

	provider.fileErr = errors.New("unsupported media")
	_, err = svc.TranslateFile(context.Background(), "AAAA", "application/x-unknown", "ja")
	require.ErrorIs(t, err, service.ErrRemoteCall, "remote rejection surfaces as a remote-call failure")
}

func TestTranslatorService_TranslateBatch(t *testing.T) {
	provider := &providerStub{completeResult: "out"}
	svc, history := newTranslator(provider)

	results, err := svc.TranslateBatch(context.Background(), "hello", model.NamedSource("en"), []string{"de", "fr", "es"})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, lang := range []string{"de", "fr", "es"} {
		require.Equal(t, lang, results[i].TargetLang, "results keep the request order")
		require.Equal(t, "out", results[i].TranslatedText)
		require.Empty(t, results[i].Error)
	}

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3, "each batch target logs its own record")
}

func TestTranslatorService_TranslateBatch_PartialFailure(t *testing.T) {
	provider := &providerStub{completeErr: errors.New("boom")}
	svc, _ := newTranslator(provider)

	results, err := svc.TranslateBatch(context.Background(), "hello", model.AutoDetect(), []string{"de"})
	require.NoError(t, err, "per-language failures do not fail the batch")
	require.Len(t, results, 1)
	require.Empty(t, results[0].TranslatedText)
	require.Contains(t, results[0].Error, "boom")
}

func TestTranslatorService_TranslateBatch_EmptyInput(t *testing.T) {
	svc, _ := newTranslator(&providerStub{})

	_, err := svc.TranslateBatch(context.Background(), "hello", model.AutoDetect(), nil)
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.TranslateBatch(context.Background(), " ", model.AutoDetect(), []string{"de"})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestTranslatorService_Refine(t *testing.T) {
	provider := &providerStub{completeResult: "Polished text."}
	svc, history := newTranslator(provider)

	out, err := svc.Refine(context.Background(), "polished text", ai.RefinePolish)
	require.NoError(t, err)
	require.Equal(t, "Polished text.", out)

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, records, "refinement never logs")
}

func TestTranslatorService_Refine_EmptyOutputKeepsInput(t *testing.T) {
	provider := &providerStub{completeResult: ""}
	svc, _ := newTranslator(provider)

	out, err := svc.Refine(context.Background(), "keep me", ai.RefineFormal)
	require.NoError(t, err, "empty refine output is not an error")
	require.Equal(t, "keep me", out, "the prior text stands")
}

func TestTranslatorService_Refine_UnknownMode(t *testing.T) {
	svc, _ := newTranslator(&providerStub{completeResult: "x"})

	_, err := svc.Refine(context.Background(), "text", ai.RefineMode("shouty"))
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestTranslatorService_Transcribe(t *testing.T) {
	provider := &providerStub{transcript: " hello there "}
	svc, history := newTranslator(provider)

	out, err := svc.Transcribe(context.Background(), []byte{1, 2, 3}, "wav")
	require.NoError(t, err)
	require.Equal(t, "hello there", out)

	_, err = svc.Transcribe(context.Background(), nil, "wav")
	require.ErrorIs(t, err, service.ErrInvalid, "empty audio is rejected")

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, records, "transcription alone never logs")
}

func TestTranslatorService_SynthesizeSpeech(t *testing.T) {
	provider := &providerStub{speech: []byte{0, 1, 2, 3}}
	svc, _ := newTranslator(provider)

	pcm, err := svc.SynthesizeSpeech(context.Background(), "hello", "alloy")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2, 3}, pcm)

	provider.speech = nil
	_, err = svc.SynthesizeSpeech(context.Background(), "hello", "alloy")
	require.ErrorIs(t, err, service.ErrRemoteCall, "missing audio payload is a remote failure")
}

func TestTranslatorService_GenerateInsights(t *testing.T) {
	provider := &providerStub{completeResult: "You translate a lot of German."}
	svc, _ := newTranslator(provider)

	out := svc.GenerateInsights(context.Background(), model.AnalyticsView{TotalCount: 5})
	require.Equal(t, "You translate a lot of German.", out)
}

func TestTranslatorService_GenerateInsights_Fallback(t *testing.T) {
	provider := &providerStub{completeErr: errors.New("down")}
	svc, _ := newTranslator(provider)

	out := svc.GenerateInsights(context.Background(), model.AnalyticsView{})
	require.Equal(t, service.InsightsFallback, out, "insight failures fall back to the fixed string")

	provider.completeErr = nil
	provider.completeResult = ""
	out = svc.GenerateInsights(context.Background(), model.AnalyticsView{})
	require.Equal(t, service.InsightsFallback, out, "empty insight output also falls back")
}
