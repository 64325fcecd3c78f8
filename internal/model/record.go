package model

// RecordKind classifies how a translation was produced.
type RecordKind string

const (
	KindText     RecordKind = "text"
	KindDocument RecordKind = "document"
	KindVoice    RecordKind = "voice"
)

// ActivityRecord is one completed translation or transcription event.
// Records are immutable once written; the history log is append-only
// (newest first) apart from a full clear.
type ActivityRecord struct {
	ID             int64      `json:"id,string"`
	SourceText     string     `json:"sourceText"`
	TranslatedText string     `json:"translatedText"`
	SourceLang     string     `json:"sourceLang"`
	TargetLang     string     `json:"targetLang"`
	Timestamp      int64      `json:"timestamp"` // milliseconds since epoch
	Kind           RecordKind `json:"kind"`
}
