package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lingua/backend/internal/model"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/repository/mock"
	"lingua/backend/internal/service"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestHistoryService_AppendPrependsNewest(t *testing.T) {
	store := repository.NewMemoryBlobStore()
	svc := service.NewHistoryService(store)
	ctx := context.Background()

	first, err := svc.Append(ctx, model.ActivityRecord{
		SourceText:     "hello",
		TranslatedText: "hola",
		SourceLang:     "en",
		TargetLang:     "es",
		Kind:           model.KindText,
	})
	require.NoError(t, err, "first append should succeed")
	require.NotZero(t, first.ID, "append should assign an ID")
	require.NotZero(t, first.Timestamp, "append should assign a timestamp")

	second, err := svc.Append(ctx, model.ActivityRecord{
		SourceText:     "goodbye",
		TranslatedText: "adios",
		SourceLang:     "en",
		TargetLang:     "es",
		Kind:           model.KindText,
	})
	require.NoError(t, err, "second append should succeed")

	records, err := svc.List(ctx)
	require.NoError(t, err, "List should succeed")
	require.Len(t, records, 2)
	require.Equal(t, second.ID, records[0].ID, "newest record should be at the head")
	require.Equal(t, "goodbye", records[0].SourceText, "text records keep full text")
	require.Equal(t, first.ID, records[1].ID)
}

func TestHistoryService_ListEmptyLog(t *testing.T) {
	svc := service.NewHistoryService(repository.NewMemoryBlobStore())

	records, err := svc.List(context.Background())
	require.NoError(t, err, "List on a missing blob should succeed")
	require.NotNil(t, records, "empty log should be a non-nil slice")
	require.Empty(t, records)
}

func TestHistoryService_Clear(t *testing.T) {
	svc := service.NewHistoryService(repository.NewMemoryBlobStore())
	ctx := context.Background()

	_, err := svc.Append(ctx, model.ActivityRecord{SourceText: "a", TargetLang: "es", Kind: model.KindText})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx), "Clear should succeed")

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, records, "cleared log should be empty")

	view, err := svc.ComputeAnalytics(ctx)
	require.NoError(t, err)
	require.Zero(t, view.TotalCount, "analytics after clear should be empty")
}

func TestHistoryService_AppendPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockBlobStore(ctrl)
	store.EXPECT().Get(gomock.Any(), service.HistoryKey).Return("", false, nil)
	store.EXPECT().Set(gomock.Any(), service.HistoryKey, gomock.Any()).Return(errors.New("disk full"))

	svc := service.NewHistoryService(store)
	_, err := svc.Append(context.Background(), model.ActivityRecord{SourceText: "a", TargetLang: "es", Kind: model.KindText})
	require.Error(t, err, "persist failure should surface")
	require.Contains(t, err.Error(), "persist history")
}

func TestHistoryService_AnalyticsEmptyLog(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := service.NewHistoryServiceWithClockForTest(repository.NewMemoryBlobStore(), fixedClock(now))

	view, err := svc.ComputeAnalytics(context.Background())
	require.NoError(t, err)
	require.Zero(t, view.TotalCount)
	require.Empty(t, view.LanguageDistribution)
	require.Len(t, view.DailyActivity, 7, "daily series is always seven days")
	require.Equal(t, "2026-03-04", view.DailyActivity[0].Date, "series starts six days back")
	require.Equal(t, "2026-03-10", view.DailyActivity[6].Date, "series ends today")
	for i, day := range view.DailyActivity {
		require.Zero(t, day.Count, "day %d should be zero-seeded", i)
		if i > 0 {
			require.Greater(t, day.Date, view.DailyActivity[i-1].Date, "dates should ascend")
		}
	}
}

func TestHistoryService_AnalyticsDistribution(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := service.NewHistoryServiceWithClockForTest(repository.NewMemoryBlobStore(), fixedClock(now))
	ctx := context.Background()

	for _, lang := range []string{"en", "en", "ne"} {
		_, err := svc.Append(ctx, model.ActivityRecord{SourceText: "x", TargetLang: lang, Kind: model.KindText})
		require.NoError(t, err)
	}

	view, err := svc.ComputeAnalytics(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, view.TotalCount)
	require.Equal(t, []model.LanguageCount{
		{Name: "English", Count: 2},
		{Name: "Nepali", Count: 1},
	}, view.LanguageDistribution, "distribution uses display names, count descending")

	require.Equal(t, 3, view.DailyActivity[6].Count, "all records land on today")
	for i := 0; i < 6; i++ {
		require.Zero(t, view.DailyActivity[i].Count)
	}
}

func TestHistoryService_AnalyticsUnknownLanguageCode(t *testing.T) {
	svc := service.NewHistoryService(repository.NewMemoryBlobStore())
	ctx := context.Background()

	_, err := svc.Append(ctx, model.ActivityRecord{SourceText: "x", TargetLang: "xx", Kind: model.KindText})
	require.NoError(t, err)

	view, err := svc.ComputeAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, view.LanguageDistribution, 1)
	require.Equal(t, "xx", view.LanguageDistribution[0].Name, "unknown codes fall back to the raw code")
}

func TestHistoryService_AnalyticsIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := service.NewHistoryServiceWithClockForTest(repository.NewMemoryBlobStore(), fixedClock(now))
	ctx := context.Background()

	_, err := svc.Append(ctx, model.ActivityRecord{SourceText: "x", TargetLang: "de", Kind: model.KindText})
	require.NoError(t, err)

	first, err := svc.ComputeAnalytics(ctx)
	require.NoError(t, err)
	second, err := svc.ComputeAnalytics(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second, "analytics is a pure read")
}
