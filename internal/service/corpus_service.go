package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"hotel-paraiso-be/internal/dto"
	"hotel-paraiso-be/internal/pkg/logger"
	"hotel-paraiso-be/pkg/corpus"
	"hotel-paraiso-be/pkg/dialog"
)

var (
	ErrItemNotFound = errors.New("corpus item not found")
	ErrDuplicateId  = errors.New("corpus item id already exists")
)

// ICorpusService owns the in-memory copy of the Q/A dataset and its JSON
// file on disk. Every mutation persists the file first, then swaps the
// in-memory slice and schedules a background reindex.
type ICorpusService interface {
	Items() []corpus.Entry
	ItemsByIntent(intent string) []corpus.Entry
	ItemById(id int) (corpus.Entry, bool)
	Add(ctx context.Context, entry corpus.Entry) error
	Update(ctx context.Context, id int, req *dto.UpdateItemRequest) error
	Delete(ctx context.Context, id int) error
	Import(ctx context.Context, entries []corpus.Entry) (int, error)
	Stats() *dto.StatsResponse
	IntentCounts() []dto.MenuIntentCount
	ExportPath() string
}

type corpusService struct {
	store     *corpus.Store
	publisher IPublisherService
	holder    *dialog.Holder
	logger    logger.ILogger

	mu      sync.RWMutex
	entries []corpus.Entry
}

func NewCorpusService(store *corpus.Store, publisher IPublisherService, holder *dialog.Holder, log logger.ILogger) (ICorpusService, error) {
	entries, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	log.Info("CorpusService", "corpus loaded", map[string]interface{}{"items": len(entries)})
	return &corpusService{
		store:     store,
		publisher: publisher,
		holder:    holder,
		logger:    log,
		entries:   entries,
	}, nil
}

func (s *corpusService) Items() []corpus.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]corpus.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *corpusService) ItemsByIntent(intent string) []corpus.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []corpus.Entry
	for _, e := range s.entries {
		if e.Intent == intent {
			out = append(out, e)
		}
	}
	return out
}

func (s *corpusService) ItemById(id int) (corpus.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.Id == id {
			return e, true
		}
	}
	return corpus.Entry{}, false
}

func (s *corpusService) Add(ctx context.Context, entry corpus.Entry) error {
	if err := corpus.ValidateEntry(&entry); err != nil {
		return err
	}
	if entry.Intent == "" {
		entry.Intent = corpus.IntentGeneral
	}

	s.mu.Lock()
	for _, e := range s.entries {
		if e.Id == entry.Id {
			s.mu.Unlock()
			return ErrDuplicateId
		}
	}
	next := make([]corpus.Entry, len(s.entries), len(s.entries)+1)
	copy(next, s.entries)
	next = append(next, entry)
	if err := s.store.Save(next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist corpus: %w", err)
	}
	s.entries = next
	s.mu.Unlock()

	s.scheduleReindex(ctx, "item added", entry.Id)
	return nil
}

func (s *corpusService) Update(ctx context.Context, id int, req *dto.UpdateItemRequest) error {
	s.mu.Lock()
	idx := -1
	for i, e := range s.entries {
		if e.Id == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrItemNotFound
	}

	next := make([]corpus.Entry, len(s.entries))
	copy(next, s.entries)
	if req.Question != "" {
		next[idx].Question = req.Question
	}
	if req.Response != "" {
		next[idx].Response = req.Response
	}
	if req.Intent != "" {
		next[idx].Intent = req.Intent
	}
	if err := corpus.ValidateEntry(&next[idx]); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.store.Save(next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist corpus: %w", err)
	}
	s.entries = next
	s.mu.Unlock()

	s.scheduleReindex(ctx, "item updated", id)
	return nil
}

func (s *corpusService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	idx := -1
	for i, e := range s.entries {
		if e.Id == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrItemNotFound
	}

	next := make([]corpus.Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:idx]...)
	next = append(next, s.entries[idx+1:]...)
	if err := s.store.Save(next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist corpus: %w", err)
	}
	s.entries = next
	s.mu.Unlock()

	s.scheduleReindex(ctx, "item deleted", id)
	return nil
}

func (s *corpusService) Import(ctx context.Context, entries []corpus.Entry) (int, error) {
	if err := corpus.ValidateEntries(entries); err != nil {
		return 0, err
	}
	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		if seen[e.Id] {
			return 0, fmt.Errorf("%w: id %d", ErrDuplicateId, e.Id)
		}
		seen[e.Id] = true
	}

	s.mu.Lock()
	if err := s.store.Save(entries); err != nil {
		s.mu.Unlock()
		return 0, fmt.Errorf("persist corpus: %w", err)
	}
	s.entries = entries
	s.mu.Unlock()

	s.scheduleReindex(ctx, "dataset imported", len(entries))
	return len(entries), nil
}

func (s *corpusService) Stats() *dto.StatsResponse {
	s.mu.RLock()
	total := len(s.entries)
	intents := make(map[string]bool)
	for _, e := range s.entries {
		intents[e.Intent] = true
	}
	s.mu.RUnlock()

	stats := &dto.StatsResponse{
		TotalItems:    total,
		UniqueIntents: len(intents),
	}
	if mod, err := s.store.LastModified(); err == nil {
		stats.LastModified = mod.Format("2006-01-02 15:04:05")
	}
	if s.holder != nil {
		stats.IndexedItems = s.holder.Current().Len()
		stats.Degraded = s.holder.Degraded()
	}
	return stats
}

func (s *corpusService) IntentCounts() []dto.MenuIntentCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, e := range s.entries {
		counts[e.Intent]++
	}
	out := make([]dto.MenuIntentCount, 0, len(dialog.MainMenu))
	for _, m := range dialog.MainMenu {
		out = append(out, dto.MenuIntentCount{
			Intent: m.Intent,
			Count:  counts[m.Intent],
		})
	}
	return out
}

func (s *corpusService) ExportPath() string {
	return s.store.Path()
}

func (s *corpusService) scheduleReindex(ctx context.Context, reason string, detail interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishReindex(ctx); err != nil {
		s.logger.Error("CorpusService", "failed to schedule reindex", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
		return
	}
	s.logger.Info("CorpusService", "reindex scheduled", map[string]interface{}{
		"reason": reason,
		"detail": detail,
	})
}
