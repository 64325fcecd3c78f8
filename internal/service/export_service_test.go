package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/service"
)

func TestExportService_Txt(t *testing.T) {
	svc := service.NewExportService()

	file, err := svc.Export("hello world", service.ExportTxt)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(file.Filename, ".txt"), "got %q", file.Filename)
	require.Equal(t, "text/plain; charset=utf-8", file.ContentType)
	require.Equal(t, "hello world", string(file.Data))
}

func TestExportService_Pdf(t *testing.T) {
	svc := service.NewExportService()

	file, err := svc.Export("hello pdf", service.ExportPdf)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(file.Filename, ".pdf"), "got %q", file.Filename)
	require.Equal(t, "application/pdf", file.ContentType)
	require.True(t, strings.HasPrefix(string(file.Data), "%PDF"), "PDF output should carry the magic header")
}

func TestExportService_Doc(t *testing.T) {
	svc := service.NewExportService()

	file, err := svc.Export("line one\nline <two>", service.ExportDoc)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(file.Filename, ".doc"), "got %q", file.Filename)
	require.Equal(t, "application/msword", file.ContentType)

	body := string(file.Data)
	require.Contains(t, body, "line one</p><p>line &lt;two&gt;", "newlines become paragraphs and markup is escaped")
}

func TestExportService_Invalid(t *testing.T) {
	svc := service.NewExportService()

	_, err := svc.Export("", service.ExportTxt)
	require.ErrorIs(t, err, service.ErrInvalid, "empty text is rejected")

	_, err = svc.Export("text", service.ExportFormat("rtf"))
	require.ErrorIs(t, err, service.ErrInvalid, "unknown formats are rejected")
}

func TestExportService_UniqueFilenames(t *testing.T) {
	svc := service.NewExportService()

	a, err := svc.Export("x", service.ExportTxt)
	require.NoError(t, err)
	b, err := svc.Export("x", service.ExportTxt)
	require.NoError(t, err)
	require.NotEqual(t, a.Filename, b.Filename, "each export gets a unique suffix")
}
