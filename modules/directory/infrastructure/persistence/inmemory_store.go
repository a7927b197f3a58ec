// Package persistence implements the collection store port with in-memory
// storage. This is the outermost layer - it implements ports defined in the
// domain layer. The collection lives for one session and is discarded on
// exit; nothing is ever written back to the remote source.
package persistence

import (
	"sync"

	"github.com/rai/employee-directory/modules/directory/domain"
)

// InMemoryStore holds the authoritative ordered record list.
//
// Insertion order is preserved: updates are in place, adds append, removes
// keep the survivors' order. Every operation returns a fresh copy of the
// collection, and the version counter increases on every effective mutation
// so derived views can detect change without diffing.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []domain.Record
	version uint64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// ReplaceAll sets the collection wholesale. Used once by the remote loader
// with already-normalized records; no validation is performed here.
func (s *InMemoryStore) ReplaceAll(records []domain.Record) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]domain.Record(nil), records...)
	s.version++
	return s.snapshotLocked()
}

// Add appends a record. The caller must have assigned a unique id via
// domain.NextID - uniqueness is a precondition, not re-checked here.
func (s *InMemoryStore) Add(record domain.Record) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	s.version++
	return s.snapshotLocked()
}

// Update merges non-empty patch fields into the record with the given id,
// leaving its position and the other records untouched. A missing id is a
// silent no-op: edit targets are always picked from the current collection,
// but a stale intent must not crash.
func (s *InMemoryStore) Update(id int, patch domain.Patch) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if patch.FirstName != "" {
			s.records[i].FirstName = patch.FirstName
		}
		if patch.LastName != "" {
			s.records[i].LastName = patch.LastName
		}
		if patch.Email != "" {
			s.records[i].Email = patch.Email
		}
		if patch.Department != "" {
			s.records[i].Department = patch.Department
		}
		s.version++
		break
	}
	return s.snapshotLocked()
}

// Remove deletes the record with the given id without reordering the
// survivors; no-op when absent.
func (s *InMemoryStore) Remove(id int) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.version++
			break
		}
	}
	return s.snapshotLocked()
}

// Snapshot returns a copy of the current collection.
func (s *InMemoryStore) Snapshot() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Version returns the current mutation counter.
func (s *InMemoryStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *InMemoryStore) snapshotLocked() []domain.Record {
	return append([]domain.Record(nil), s.records...)
}

// Compile-time interface check.
var _ domain.CollectionStore = (*InMemoryStore)(nil)
