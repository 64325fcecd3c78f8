package service

import (
	"bytes"
	"fmt"
	"html"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

// ExportFormat names a download rendering of translated text.
type ExportFormat string

const (
	ExportTxt ExportFormat = "txt"
	ExportPdf ExportFormat = "pdf"
	ExportDoc ExportFormat = "doc"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders translated text as downloadable files: plain
// text, a simple line-wrapped PDF (no layout fidelity) or a minimal
// HTML-wrapped word-processor-compatible document.
type ExportService interface {
	Export(text string, format ExportFormat) (ExportFile, error)
}

type exportService struct{}

// NewExportService creates an export service.
func NewExportService() ExportService {
	return &exportService{}
}

func (s *exportService) Export(text string, format ExportFormat) (ExportFile, error) {
	if text == "" {
		return ExportFile{}, fmt.Errorf("%w: empty text", ErrInvalid)
	}

	name := "translation-" + uuid.New().String()[:8]
	switch format {
	case ExportTxt:
		return ExportFile{
			Filename:    name + ".txt",
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte(text),
		}, nil
	case ExportPdf:
		data, err := renderPdf(text)
		if err != nil {
			return ExportFile{}, fmt.Errorf("render pdf: %w", err)
		}
		return ExportFile{
			Filename:    name + ".pdf",
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	case ExportDoc:
		return ExportFile{
			Filename:    name + ".doc",
			ContentType: "application/msword",
			Data:        renderDoc(text),
		}, nil
	default:
		return ExportFile{}, fmt.Errorf("%w: unknown export format %q", ErrInvalid, format)
	}
}

func renderPdf(text string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, text, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderDoc(text string) []byte {
	var buf bytes.Buffer
	buf.WriteString("<html><head><meta charset=\"utf-8\"></head><body>")
	buf.WriteString("<p>")
	escaped := html.EscapeString(text)
	buf.WriteString(replaceNewlines(escaped))
	buf.WriteString("</p></body></html>")
	return buf.Bytes()
}

func replaceNewlines(text string) string {
	var buf bytes.Buffer
	for _, r := range text {
		if r == '\n' {
			buf.WriteString("</p><p>")
			continue
		}
		buf.WriteRune(r)
	}
	return buf.String()
}
