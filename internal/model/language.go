package model

// Language maps a short code to a display name used in prompts and analytics.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages is the static reference table. Never mutated at runtime.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "ne", Name: "Nepali"},
	{Code: "hi", Name: "Hindi"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ar", Name: "Arabic"},
	{Code: "bn", Name: "Bengali"},
	{Code: "ta", Name: "Tamil"},
	{Code: "ur", Name: "Urdu"},
	{Code: "th", Name: "Thai"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "tr", Name: "Turkish"},
	{Code: "nl", Name: "Dutch"},
}

var languageNames = func() map[string]string {
	m := make(map[string]string, len(Languages))
	for _, l := range Languages {
		m[l.Code] = l.Name
	}
	return m
}()

// LanguageName returns the display name for a code, or the raw code when
// the code is not in the reference table.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// AutoCode is the wire-level value meaning source-language detection is
// delegated to the model. It is mapped to SourceLanguage at the HTTP
// boundary and never threaded through prompt construction as a string.
const AutoCode = "auto"

// SourceLanguage is a tagged source-language variant: either a named
// language or automatic detection by the model.
type SourceLanguage struct {
	auto bool
	code string
}

// NamedSource returns a SourceLanguage for a concrete language code.
func NamedSource(code string) SourceLanguage {
	return SourceLanguage{code: code}
}

// AutoDetect returns the SourceLanguage meaning detection is delegated
// to the remote model.
func AutoDetect() SourceLanguage {
	return SourceLanguage{auto: true}
}

// ParseSourceLanguage maps the wire value to a SourceLanguage, treating
// the auto sentinel (any casing) and the empty string as AutoDetect.
func ParseSourceLanguage(code string) SourceLanguage {
	if code == "" || code == AutoCode || code == "Auto" {
		return AutoDetect()
	}
	return NamedSource(code)
}

// IsAuto reports whether detection is delegated to the model.
func (s SourceLanguage) IsAuto() bool { return s.auto }

// Code returns the language code, or the auto sentinel for AutoDetect.
// Used only when serializing back into an ActivityRecord.
func (s SourceLanguage) Code() string {
	if s.auto {
		return AutoCode
	}
	return s.code
}

// Name returns the display name for a named source and "" for AutoDetect.
func (s SourceLanguage) Name() string {
	if s.auto {
		return ""
	}
	return LanguageName(s.code)
}
