package service

import (
	"time"

	"lingua/backend/internal/repository"
)

// NewHistoryServiceWithClockForTest exposes clock injection for tests.
func NewHistoryServiceWithClockForTest(store repository.BlobStore, now func() time.Time) HistoryService {
	return &historyService{store: store, now: now}
}
