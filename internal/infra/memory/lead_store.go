package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/xavierca1/dealflow-pipeline/internal/entity"
)

// LeadStore is the in-memory source of truth for leads. All state is
// volatile; the pipeline starts empty on every boot.
//
// The mutex covers the map and the id counter. Leads are stored and
// returned as copies, so nothing outside the store can bypass the lock.
type LeadStore struct {
	mu     sync.RWMutex
	leads  map[int]*entity.Lead
	nextID int
}

var _ entity.LeadRepositoryInterface = (*LeadStore)(nil)

func NewLeadStore() *LeadStore {
	return &LeadStore{
		leads: make(map[int]*entity.Lead),
	}
}

// NextID hands out ids from a dedicated counter instead of len(map)+1,
// so concurrent ingestion can never allocate the same id twice and a
// future delete would not cause reuse.
func (s *LeadStore) NextID(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

func (s *LeadStore) Put(ctx context.Context, lead *entity.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads[lead.ID] = lead.Clone()
	return nil
}

func (s *LeadStore) Get(ctx context.Context, id int) (*entity.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lead, ok := s.leads[id]
	if !ok {
		return nil, fmt.Errorf("get lead %d: %w", id, entity.ErrLeadNotFound)
	}
	return lead.Clone(), nil
}

// Update runs fn against the stored record while holding the write
// lock. Concurrent updates to the same lead serialize at whole-record
// granularity; updates to different leads only contend for the short
// critical section here.
func (s *LeadStore) Update(ctx context.Context, id int, fn func(*entity.Lead) error) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return nil, fmt.Errorf("update lead %d: %w", id, entity.ErrLeadNotFound)
	}

	if err := fn(lead); err != nil {
		return nil, err
	}
	return lead.Clone(), nil
}

// Snapshot returns a point-in-time copy of every lead. Reporting works
// off this copy so aggregation never holds the store lock while it runs.
func (s *LeadStore) Snapshot(ctx context.Context) []*entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Lead, 0, len(s.leads))
	for _, lead := range s.leads {
		out = append(out, lead.Clone())
	}
	return out
}

func (s *LeadStore) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}
