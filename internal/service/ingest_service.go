package service

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"lingua/backend/internal/model"
)

// DefaultMaxArtifactSize caps uploads at 4 MB, checked before any
// processing or network call.
const DefaultMaxArtifactSize = 4 << 20

// PdfPlaceholder marks PDF uploads whose text is not extracted locally;
// the actual text comes from the remote model during translation.
const PdfPlaceholder = "[PDF document - content will be extracted during translation]"

// IngestResult is the outcome of preparing an uploaded artifact.
type IngestResult struct {
	Kind model.ArtifactKind `json:"kind"`
	// Text is the extracted text for text-class artifacts, or the PDF
	// placeholder marker. Empty for images and opaque binaries.
	Text string `json:"text,omitempty"`
}

// IngestService classifies uploaded artifacts and prepares them for
// submission: raw text for text-class files, passthrough for binaries.
type IngestService interface {
	// Classify buckets an artifact by declared content type/extension.
	Classify(upload model.Upload) model.ArtifactKind
	// Extract enforces the size cap and produces the ingest result for
	// the artifact. Undecodable text surfaces ErrRead; callers fall back
	// to treating the artifact as opaque binary.
	Extract(upload model.Upload, content []byte) (IngestResult, error)
	// ValidateSize rejects artifacts over the size cap before any
	// processing or network call.
	ValidateSize(size int64) error
}

type ingestService struct {
	maxSize   int64
	sanitizer *bluemonday.Policy
}

// NewIngestService creates an ingest service with the given size cap
// (bytes); zero or negative selects the default.
func NewIngestService(maxSize int64) IngestService {
	if maxSize <= 0 {
		maxSize = DefaultMaxArtifactSize
	}
	return &ingestService{
		maxSize:   maxSize,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

var textExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".csv":  true,
	".json": true,
	".html": true,
	".htm":  true,
}

func (s *ingestService) Classify(upload model.Upload) model.ArtifactKind {
	mime := strings.ToLower(upload.MimeType)
	ext := strings.ToLower(filepath.Ext(upload.Name))

	switch {
	case mime == "application/pdf" || ext == ".pdf":
		return model.ArtifactPdf
	case strings.HasPrefix(mime, "image/"):
		return model.ArtifactImage
	case strings.HasPrefix(mime, "text/") || textExtensions[ext]:
		return model.ArtifactText
	default:
		return model.ArtifactBinary
	}
}

func (s *ingestService) ValidateSize(size int64) error {
	if size > s.maxSize {
		return fmt.Errorf("%w: %d bytes exceeds %d byte limit", ErrSizeLimit, size, s.maxSize)
	}
	return nil
}

func (s *ingestService) Extract(upload model.Upload, content []byte) (IngestResult, error) {
	if err := s.ValidateSize(max64(upload.Size, int64(len(content)))); err != nil {
		return IngestResult{}, err
	}

	kind := s.Classify(upload)
	switch kind {
	case model.ArtifactPdf:
		return IngestResult{Kind: kind, Text: PdfPlaceholder}, nil
	case model.ArtifactImage, model.ArtifactBinary:
		// Preview/passthrough only; no local text.
		return IngestResult{Kind: kind}, nil
	}

	if !utf8.Valid(content) {
		return IngestResult{}, fmt.Errorf("%w: not valid UTF-8", ErrRead)
	}

	text := string(content)
	ext := strings.ToLower(filepath.Ext(upload.Name))
	if ext == ".html" || ext == ".htm" || strings.Contains(strings.ToLower(upload.MimeType), "html") {
		text = s.flattenHTML(text)
	}

	return IngestResult{Kind: kind, Text: text}, nil
}

// flattenHTML sanitizes markup and collapses it to readable plain text.
func (s *ingestService) flattenHTML(content string) string {
	clean := s.sanitizer.Sanitize(content)

	node, err := html.Parse(strings.NewReader(clean))
	if err != nil {
		return clean
	}

	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "br", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
				buf.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)

	lines := strings.Split(buf.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, "\n")
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
