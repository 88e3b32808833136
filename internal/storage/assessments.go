package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/yourname/dreamwell/internal"
)

// AssessmentsKey is the slot holding the whole history as one JSON array.
const AssessmentsKey = "sleepAssessments"

// AssessmentStore owns the newest-first assessment history and writes the
// complete sequence back to its KeyValue on every append.
//
// Appends are serialised within one process. Two processes sharing a backend
// can still lose an update because each rewrites the slot from its own copy.
type AssessmentStore struct {
	kv     KeyValue
	key    string
	logger internal.Logger

	mu     sync.Mutex
	items  []internal.Assessment
	loaded bool
}

func NewAssessmentStore(kv KeyValue, logger internal.Logger) *AssessmentStore {
	return &AssessmentStore{
		kv:     kv,
		key:    AssessmentsKey,
		logger: logger,
		items:  []internal.Assessment{},
	}
}

// Load rehydrates the history from the backend. A missing slot, a read error
// or an undecodable blob all yield an empty history.
func (s *AssessmentStore) Load(ctx context.Context) []internal.Assessment {
	items := s.read(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.loaded = true
	return clone(s.items)
}

func (s *AssessmentStore) read(ctx context.Context) []internal.Assessment {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warnf("storage: failed to read %s, starting with empty history: %v", s.key, err)
		}
		return []internal.Assessment{}
	}

	var items []internal.Assessment
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warnf("storage: discarding unreadable %s blob: %v", s.key, err)
		return []internal.Assessment{}
	}
	if items == nil {
		items = []internal.Assessment{}
	}
	return items
}

// Append prepends a and persists the resulting sequence before returning it.
// On a write failure the in-memory history is left untouched. A store that was
// never loaded reads the backend first so existing history is not overwritten.
func (s *AssessmentStore) Append(ctx context.Context, a internal.Assessment) ([]internal.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.items = s.read(ctx)
		s.loaded = true
	}

	next := make([]internal.Assessment, 0, len(s.items)+1)
	next = append(next, a)
	next = append(next, s.items...)

	data, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("storage: encode %s: %w", s.key, err)
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		s.logger.Errorf("storage: error saving %s: %v", s.key, err)
		return nil, fmt.Errorf("storage: persist %s: %w", s.key, err)
	}

	s.items = next
	return clone(s.items), nil
}

func (s *AssessmentStore) List() []internal.Assessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.items)
}

func clone(items []internal.Assessment) []internal.Assessment {
	out := make([]internal.Assessment, len(items))
	copy(out, items)
	return out
}

var _ AssessmentRepository = (*AssessmentStore)(nil)
