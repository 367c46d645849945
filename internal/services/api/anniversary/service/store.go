package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"jubilee/internal/core/roster"
)

// run is one stored analysis result. Runs live in process memory only and
// disappear on restart
type run struct {
	ID        string
	Year      int
	Month     int
	Result    *roster.Result
	CreatedAt time.Time
}

// runStore is a bounded in-memory run registry. When full, the oldest run
// is evicted to make room
type runStore struct {
	mu    sync.Mutex
	max   int
	runs  map[string]*run
	order []string // insertion order, oldest first
}

func newRunStore(max int) *runStore {
	if max < 1 {
		max = 1
	}
	return &runStore{max: max, runs: make(map[string]*run)}
}

func (s *runStore) put(r *run) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = uuid.NewString()
	for len(s.order) >= s.max {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
	s.runs[r.ID] = r
	s.order = append(s.order, r.ID)
	return r.ID
}

func (s *runStore) get(id string) (*run, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runs[id]
	return r, ok
}

func (s *runStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[id]; !ok {
		return false
	}
	delete(s.runs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *runStore) reset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.runs)
	s.runs = make(map[string]*run)
	s.order = nil
	return n
}

func (s *runStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}
