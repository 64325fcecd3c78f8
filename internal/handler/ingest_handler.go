package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/model"
	"lingua/backend/internal/service"
)

type IngestHandler struct {
	service service.IngestService
}

func NewIngestHandler(service service.IngestService) *IngestHandler {
	return &IngestHandler{service: service}
}

type ingestResponse struct {
	Kind model.ArtifactKind `json:"kind"`
	Text string             `json:"text,omitempty"`
}

func (h *IngestHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/ingest", h.Ingest)
}

// Ingest classifies an uploaded artifact and extracts its text when
// possible.
// @Summary Ingest an upload
// @Description Classify an uploaded artifact and extract text for text-class files
// @Tags ingest
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Artifact"
// @Success 200 {object} ingestResponse
// @Failure 400 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Router /ingest [post]
func (h *IngestHandler) Ingest(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "file is required"})
	}

	upload := model.Upload{
		Name:     fileHeader.Filename,
		Size:     fileHeader.Size,
		MimeType: fileHeader.Header.Get("Content-Type"),
	}
	if err := h.service.ValidateSize(upload.Size); err != nil {
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

	result, err := h.service.Extract(upload, content)
	if errors.Is(err, service.ErrRead) {
		// Undecodable text falls back to opaque binary passthrough.
		return c.JSON(http.StatusOK, ingestResponse{Kind: model.ArtifactBinary})
	}
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ingestResponse{Kind: result.Kind, Text: result.Text})
}
