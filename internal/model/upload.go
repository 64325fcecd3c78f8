package model

// ArtifactKind classifies an uploaded artifact by declared content type
// and extension.
type ArtifactKind string

const (
	ArtifactText   ArtifactKind = "text"
	ArtifactPdf    ArtifactKind = "pdf"
	ArtifactImage  ArtifactKind = "image"
	ArtifactBinary ArtifactKind = "binary"
)

// Upload describes a user-supplied artifact before ingestion.
type Upload struct {
	Name     string
	Size     int64
	MimeType string
}
