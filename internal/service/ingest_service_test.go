package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/model"
	"lingua/backend/internal/service"
)

func TestIngestService_Classify(t *testing.T) {
	svc := service.NewIngestService(0)

	cases := []struct {
		name string
		mime string
		want model.ArtifactKind
	}{
		{"report.pdf", "application/pdf", model.ArtifactPdf},
		{"scan.PDF", "", model.ArtifactPdf},
		{"photo.png", "image/png", model.ArtifactImage},
		{"photo.jpg", "image/jpeg", model.ArtifactImage},
		{"notes.txt", "text/plain", model.ArtifactText},
		{"readme.md", "", model.ArtifactText},
		{"data.csv", "", model.ArtifactText},
		{"page.html", "text/html", model.ArtifactText},
		{"payload", "text/x-custom", model.ArtifactText},
		{"archive.zip", "application/zip", model.ArtifactBinary},
		{"mystery", "", model.ArtifactBinary},
	}
	for _, tc := range cases {
		got := svc.Classify(model.Upload{Name: tc.name, MimeType: tc.mime})
		require.Equal(t, tc.want, got, "classify %s (%s)", tc.name, tc.mime)
	}
}

func TestIngestService_SizeLimit(t *testing.T) {
	svc := service.NewIngestService(10)

	require.NoError(t, svc.ValidateSize(10), "exactly at the cap is allowed")
	require.ErrorIs(t, svc.ValidateSize(11), service.ErrSizeLimit)

	_, err := svc.Extract(model.Upload{Name: "big.txt", Size: 11}, []byte("x"))
	require.ErrorIs(t, err, service.ErrSizeLimit, "declared size over the cap is rejected")

	_, err = svc.Extract(model.Upload{Name: "big.txt", Size: 1}, []byte(strings.Repeat("x", 11)))
	require.ErrorIs(t, err, service.ErrSizeLimit, "actual content over the cap is rejected")
}

func TestIngestService_ExtractText(t *testing.T) {
	svc := service.NewIngestService(0)

	result, err := svc.Extract(model.Upload{Name: "notes.txt", MimeType: "text/plain"}, []byte("hello\nworld"))
	require.NoError(t, err)
	require.Equal(t, model.ArtifactText, result.Kind)
	require.Equal(t, "hello\nworld", result.Text)
}

func TestIngestService_ExtractInvalidUTF8(t *testing.T) {
	svc := service.NewIngestService(0)

	_, err := svc.Extract(model.Upload{Name: "notes.txt", MimeType: "text/plain"}, []byte{0xff, 0xfe, 0xfd})
	require.ErrorIs(t, err, service.ErrRead, "undecodable text surfaces a read error")
}

func TestIngestService_ExtractPdfPlaceholder(t *testing.T) {
	svc := service.NewIngestService(0)

	result, err := svc.Extract(model.Upload{Name: "report.pdf", MimeType: "application/pdf"}, []byte("%PDF-1.7"))
	require.NoError(t, err)
	require.Equal(t, model.ArtifactPdf, result.Kind)
	require.Equal(t, service.PdfPlaceholder, result.Text, "PDFs carry the placeholder, not local text")
}

func TestIngestService_ExtractBinaryPassthrough(t *testing.T) {
	svc := service.NewIngestService(0)

	result, err := svc.Extract(model.Upload{Name: "photo.png", MimeType: "image/png"}, []byte{0x89, 0x50})
	require.NoError(t, err)
	require.Equal(t, model.ArtifactImage, result.Kind)
	require.Empty(t, result.Text, "images carry no local text")
}

func TestIngestService_ExtractHTMLFlattened(t *testing.T) {
	svc := service.NewIngestService(0)

	page := `<html><body><h1>Title</h1><p>First paragraph.</p><script>alert(1)</script><p>Second <b>bold</b> paragraph.</p></body></html>`
	result, err := svc.Extract(model.Upload{Name: "page.html", MimeType: "text/html"}, []byte(page))
	require.NoError(t, err)
	require.Equal(t, model.ArtifactText, result.Kind)
	require.Contains(t, result.Text, "Title")
	require.Contains(t, result.Text, "First paragraph.")
	require.Contains(t, result.Text, "Second bold paragraph.")
	require.NotContains(t, result.Text, "alert", "script content is stripped")
	require.NotContains(t, result.Text, "<p>", "markup is flattened away")
}
