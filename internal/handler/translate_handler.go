package handler

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/model"
	"lingua/backend/internal/service"
	"lingua/backend/internal/service/ai"
)

type TranslateHandler struct {
	translator service.TranslatorService
	pages      service.PageService
	ingest     service.IngestService
}

func NewTranslateHandler(translator service.TranslatorService, pages service.PageService, ingest service.IngestService) *TranslateHandler {
	return &TranslateHandler{translator: translator, pages: pages, ingest: ingest}
}

// Request/Response types

type translateTextRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"` // language code or "auto"
	TargetLang string `json:"targetLang"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type translateURLRequest struct {
	URL        string `json:"url"`
	TargetLang string `json:"targetLang"`
}

type translateURLResponse struct {
	Title          string `json:"title"`
	TranslatedText string `json:"translatedText"`
}

type translateBatchRequest struct {
	Text        string   `json:"text"`
	SourceLang  string   `json:"sourceLang"`
	TargetLangs []string `json:"targetLangs"`
}

type refineRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"` // polish, formal, casual, summarize
}

type refineResponse struct {
	RefinedText string `json:"refinedText"`
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate/text", h.TranslateText)
	g.POST("/translate/document", h.TranslateDocument)
	g.POST("/translate/file", h.TranslateFile)
	g.POST("/translate/url", h.TranslateURL)
	g.POST("/translate/batch", h.TranslateBatch)
	g.POST("/refine", h.Refine)
	g.GET("/languages", h.Languages)
}

// TranslateText translates plain text.
// @Summary Translate text
// @Description Translate plain text into the target language
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateTextRequest true "Translate request"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /translate/text [post]
func (h *TranslateHandler) TranslateText(c echo.Context) error {
	var req translateTextRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	translated, err := h.translator.TranslateText(
		c.Request().Context(),
		req.Text,
		model.ParseSourceLanguage(req.SourceLang),
		req.TargetLang,
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translateResponse{TranslatedText: translated})
}

// TranslateDocument translates document text, preserving paragraphs.
// @Summary Translate document text
// @Description Translate document content preserving paragraph structure
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateTextRequest true "Translate request"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /translate/document [post]
func (h *TranslateHandler) TranslateDocument(c echo.Context) error {
	var req translateTextRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	translated, err := h.translator.TranslateDocument(
		c.Request().Context(),
		req.Text,
		model.ParseSourceLanguage(req.SourceLang),
		req.TargetLang,
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translateResponse{TranslatedText: translated})
}

// TranslateFile submits an uploaded binary artifact for translation.
// @Summary Translate an uploaded file
// @Description Pass an uploaded file (PDF, image, document) to the model inline and translate its content
// @Tags translate
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Artifact to translate"
// @Param targetLang formData string true "Target language code"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /translate/file [post]
func (h *TranslateHandler) TranslateFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "file is required"})
	}
	if err := h.ingest.ValidateSize(fileHeader.Size); err != nil {
		return writeServiceError(c, err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid file"})
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid file"})
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	translated, err := h.translator.TranslateFile(
		c.Request().Context(),
		base64.StdEncoding.EncodeToString(content),
		mimeType,
		c.FormValue("targetLang"),
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translateResponse{TranslatedText: translated})
}

// TranslateURL fetches a page and translates its readable article.
// @Summary Translate a web page
// @Description Fetch a URL, extract the readable article and translate it
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateURLRequest true "URL translate request"
// @Success 200 {object} translateURLResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /translate/url [post]
func (h *TranslateHandler) TranslateURL(c echo.Context) error {
	var req translateURLRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	result, err := h.pages.TranslateURL(c.Request().Context(), req.URL, req.TargetLang)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translateURLResponse{
		Title:          result.Title,
		TranslatedText: result.TranslatedText,
	})
}

// TranslateBatch translates one text into several target languages.
// @Summary Batch translate
// @Description Translate one text into several target languages concurrently
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateBatchRequest true "Batch request"
// @Success 200 {array} service.BatchResult
// @Failure 400 {object} errorResponse
// @Router /translate/batch [post]
func (h *TranslateHandler) TranslateBatch(c echo.Context) error {
	var req translateBatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	results, err := h.translator.TranslateBatch(
		c.Request().Context(),
		req.Text,
		model.ParseSourceLanguage(req.SourceLang),
		req.TargetLangs,
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

// Refine rewrites text in one of the fixed modes.
// @Summary Refine text
// @Description Rewrite text in a fixed mode: polish, formal, casual or summarize
// @Tags translate
// @Accept json
// @Produce json
// @Param request body refineRequest true "Refine request"
// @Success 200 {object} refineResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /refine [post]
func (h *TranslateHandler) Refine(c echo.Context) error {
	var req refineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	refined, err := h.translator.Refine(c.Request().Context(), req.Text, ai.RefineMode(req.Mode))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, refineResponse{RefinedText: refined})
}

// Languages returns the static language reference table.
// @Summary List languages
// @Description List supported language codes and display names
// @Tags translate
// @Produce json
// @Success 200 {array} model.Language
// @Router /languages [get]
func (h *TranslateHandler) Languages(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Languages)
}
