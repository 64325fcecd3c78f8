package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/audio"
	"lingua/backend/internal/model"
	"lingua/backend/internal/service"
)

type SpeechHandler struct {
	translator service.TranslatorService
	ingest     service.IngestService
	recorder   *audio.Recorder
	player     *audio.Player
	voice      string
}

func NewSpeechHandler(translator service.TranslatorService, ingest service.IngestService, recorder *audio.Recorder, player *audio.Player, voice string) *SpeechHandler {
	return &SpeechHandler{
		translator: translator,
		ingest:     ingest,
		recorder:   recorder,
		player:     player,
		voice:      voice,
	}
}

// Request/Response types

type transcribeResponse struct {
	Text           string `json:"text"`
	TranslatedText string `json:"translatedText,omitempty"`
}

type synthesizeRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
	Play  bool   `json:"play"` // also play on the server's output device
}

type recordStateResponse struct {
	State string `json:"state"`
}

func (h *SpeechHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/speech/transcribe", h.Transcribe)
	g.POST("/speech/synthesize", h.Synthesize)
	g.POST("/speech/record/start", h.RecordStart)
	g.POST("/speech/record/stop", h.RecordStop)
}

// Transcribe converts uploaded audio into text, optionally translating
// the transcript in the same request.
// @Summary Transcribe audio
// @Description Transcribe an uploaded audio file; optionally translate the transcript
// @Tags speech
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file (wav or mp3)"
// @Param targetLang formData string false "Translate the transcript into this language"
// @Success 200 {object} transcribeResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /speech/transcribe [post]
func (h *SpeechHandler) Transcribe(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "audio is required"})
	}
	if err := h.ingest.ValidateSize(fileHeader.Size); err != nil {
		return writeServiceError(c, err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid audio"})
	}
	defer f.Close()

	payload, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid audio"})
	}

	ctx := c.Request().Context()
	text, err := h.translator.Transcribe(ctx, payload, audioFormat(fileHeader.Filename))
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := transcribeResponse{Text: text}
	if targetLang := c.FormValue("targetLang"); targetLang != "" {
		translated, err := h.translator.TranslateTranscript(ctx, text, model.AutoDetect(), targetLang)
		if err != nil {
			return writeServiceError(c, err)
		}
		resp.TranslatedText = translated
	}
	return c.JSON(http.StatusOK, resp)
}

// Synthesize returns spoken audio for the given text as a WAV download.
// @Summary Synthesize speech
// @Description Generate spoken audio (24 kHz mono WAV) for the given text
// @Tags speech
// @Accept json
// @Produce audio/wav
// @Param request body synthesizeRequest true "Synthesis request"
// @Success 200 {file} binary
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /speech/synthesize [post]
func (h *SpeechHandler) Synthesize(c echo.Context) error {
	var req synthesizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	voice := req.Voice
	if voice == "" {
		voice = h.voice
	}

	pcm, err := h.translator.SynthesizeSpeech(c.Request().Context(), req.Text, voice)
	if err != nil {
		return writeServiceError(c, err)
	}

	if req.Play {
		// Fire-and-forget on the local output device; playback errors
		// don't fail the download.
		if err := h.player.Play(pcm, audio.SynthesisSampleRate); err != nil {
			c.Logger().Warnf("local playback failed: %v", err)
		}
	}

	wav := audio.EncodeWAV(pcm, audio.SynthesisSampleRate, 1)
	return c.Blob(http.StatusOK, "audio/wav", wav)
}

// RecordStart opens a microphone capture session.
// @Summary Start microphone capture
// @Description Acquire the microphone and start recording (desktop deployments)
// @Tags speech
// @Produce json
// @Success 200 {object} recordStateResponse
// @Failure 409 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /speech/record/start [post]
func (h *SpeechHandler) RecordStart(c echo.Context) error {
	if err := h.recorder.Start(); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, recordStateResponse{State: h.recorder.State().String()})
}

// RecordStop finalizes the capture and transcribes it.
// @Summary Stop microphone capture
// @Description Stop recording, transcribe the captured audio and optionally translate it
// @Tags speech
// @Accept json
// @Produce json
// @Param targetLang query string false "Translate the transcript into this language"
// @Success 200 {object} transcribeResponse
// @Failure 409 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /speech/record/stop [post]
func (h *SpeechHandler) RecordStop(c echo.Context) error {
	wav, err := h.recorder.Stop()
	if err != nil {
		return writeServiceError(c, err)
	}

	ctx := c.Request().Context()
	text, err := h.translator.Transcribe(ctx, wav, "wav")
	if err != nil {
		// The pipeline is already back to Idle; only the action fails.
		return writeServiceError(c, err)
	}

	resp := transcribeResponse{Text: text}
	if targetLang := c.QueryParam("targetLang"); targetLang != "" {
		translated, err := h.translator.TranslateTranscript(ctx, text, model.AutoDetect(), targetLang)
		if err != nil {
			return writeServiceError(c, err)
		}
		resp.TranslatedText = translated
	}
	return c.JSON(http.StatusOK, resp)
}

// audioFormat maps an uploaded filename onto the wire format name.
func audioFormat(filename string) string {
	if strings.HasSuffix(strings.ToLower(filename), ".mp3") {
		return "mp3"
	}
	return "wav"
}
