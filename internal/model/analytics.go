package model

// LanguageCount is one target-language bucket in the analytics view.
type LanguageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyCount is one calendar day in the fixed 7-day activity series.
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// AnalyticsView is derived from the full history log on demand and never
// persisted. DailyActivity always holds exactly 7 entries in ascending
// date order ending on the current day, zero-seeded.
type AnalyticsView struct {
	TotalCount           int             `json:"totalCount"`
	LanguageDistribution []LanguageCount `json:"languageDistribution"`
	DailyActivity        []DailyCount    `json:"dailyActivity"`
}
