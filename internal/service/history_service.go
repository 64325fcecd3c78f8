package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/model"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/snowflake"
)

// HistoryKey is the blob-store key holding the JSON-serialized log.
const HistoryKey = "history"

// dailyWindow is the fixed length of the daily activity series.
const dailyWindow = 7

// HistoryService is the append-only activity log and the analytics view
// derived from it. Records are immutable once appended; the only
// destructive operation is a full clear.
//
// Every append is a read-modify-write of the whole persisted blob, so
// two concurrent appends can lose one of the records. Known limitation,
// matching the storage contract; callers are not serialized here.
type HistoryService interface {
	// Append assigns an ID and timestamp, inserts the record at the head
	// of the log and persists it.
	Append(ctx context.Context, record model.ActivityRecord) (model.ActivityRecord, error)
	// List returns all records, newest first. An absent blob is an
	// empty log.
	List(ctx context.Context) ([]model.ActivityRecord, error)
	// Clear empties the log. Irreversible.
	Clear(ctx context.Context) error
	// ComputeAnalytics derives the aggregate view from the full log.
	ComputeAnalytics(ctx context.Context) (model.AnalyticsView, error)
}

type historyService struct {
	store repository.BlobStore
	now   func() time.Time
}

// NewHistoryService creates a history service over the given blob store.
func NewHistoryService(store repository.BlobStore) HistoryService {
	return &historyService{store: store, now: time.Now}
}

func (s *historyService) load(ctx context.Context) ([]model.ActivityRecord, error) {
	raw, ok, err := s.store.Get(ctx, HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var records []model.ActivityRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return records, nil
}

func (s *historyService) Append(ctx context.Context, record model.ActivityRecord) (model.ActivityRecord, error) {
	records, err := s.load(ctx)
	if err != nil {
		return model.ActivityRecord{}, err
	}

	record.ID = snowflake.NextID()
	record.Timestamp = s.now().UnixMilli()

	// Newest first. No dedup, no size cap.
	records = append([]model.ActivityRecord{record}, records...)

	raw, err := json.Marshal(records)
	if err != nil {
		return model.ActivityRecord{}, fmt.Errorf("encode history: %w", err)
	}
	if err := s.store.Set(ctx, HistoryKey, string(raw)); err != nil {
		logger.Warn("history append failed", "module", "service", "action", "save", "resource", "history", "result", "failed", "error", err)
		return model.ActivityRecord{}, fmt.Errorf("persist history: %w", err)
	}

	logger.Info("history appended", "module", "service", "action", "save", "resource", "history", "result", "ok", "kind", record.Kind, "target_lang", record.TargetLang, "total", len(records))
	return record, nil
}

func (s *historyService) List(ctx context.Context) ([]model.ActivityRecord, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.ActivityRecord{}
	}
	return records, nil
}

func (s *historyService) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, HistoryKey); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	logger.Info("history cleared", "module", "service", "action", "delete", "resource", "history", "result", "ok")
	return nil
}

func (s *historyService) ComputeAnalytics(ctx context.Context) (model.AnalyticsView, error) {
	records, err := s.load(ctx)
	if err != nil {
		return model.AnalyticsView{}, err
	}

	// Language distribution keyed by display name, raw code fallback.
	langCounts := make(map[string]int)
	for _, r := range records {
		langCounts[model.LanguageName(r.TargetLang)]++
	}
	distribution := make([]model.LanguageCount, 0, len(langCounts))
	for name, count := range langCounts {
		distribution = append(distribution, model.LanguageCount{Name: name, Count: count})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}
		return distribution[i].Name < distribution[j].Name
	})

	// Fixed window of the 7 most recent calendar days ending today,
	// ascending, zero-seeded so quiet days are explicit.
	today := s.now()
	daily := make([]model.DailyCount, dailyWindow)
	dayIndex := make(map[string]int, dailyWindow)
	for i := 0; i < dailyWindow; i++ {
		day := today.AddDate(0, 0, i-(dailyWindow-1))
		date := day.Format("2006-01-02")
		daily[i] = model.DailyCount{Date: date}
		dayIndex[date] = i
	}
	for _, r := range records {
		date := time.UnixMilli(r.Timestamp).Format("2006-01-02")
		if i, ok := dayIndex[date]; ok {
			daily[i].Count++
		}
	}

	return model.AnalyticsView{
		TotalCount:           len(records),
		LanguageDistribution: distribution,
		DailyActivity:        daily,
	}, nil
}
