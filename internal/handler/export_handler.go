package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/service"
)

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(service service.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

type exportRequest struct {
	Text string `json:"text"`
}

func (h *ExportHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/export/:format", h.Export)
}

// Export renders translated text as a downloadable file.
// @Summary Export translated text
// @Description Render translated text as a txt, pdf or doc download
// @Tags export
// @Accept json
// @Produce application/octet-stream
// @Param format path string true "Export format" Enums(txt, pdf, doc)
// @Param request body exportRequest true "Text to export"
// @Success 200 {file} binary
// @Failure 400 {object} errorResponse
// @Router /export/{format} [post]
func (h *ExportHandler) Export(c echo.Context) error {
	var req exportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	file, err := h.service.Export(req.Text, service.ExportFormat(c.Param("format")))
	if err != nil {
		return writeServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
