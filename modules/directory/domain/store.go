package domain

// Patch holds replacement field values for an update. Empty fields are left
// untouched; every field is named explicitly - the id is never part of a
// patch.
type Patch struct {
	FirstName  string
	LastName   string
	Email      string
	Department string
}

// CollectionStore is the port for the session's authoritative record list.
// This is defined in the domain and implemented in infrastructure.
//
// Mutations return the resulting collection snapshot (a copy, never the
// backing slice) so derived views can detect change by version comparison
// instead of re-reading shared state.
type CollectionStore interface {
	// ReplaceAll sets the collection wholesale. Used once, by the remote
	// loader, with already-normalized records; no validation is performed.
	ReplaceAll(records []Record) []Record

	// Add appends a record. The caller must have assigned a unique id via
	// NextID; uniqueness is a documented precondition, not re-checked here.
	Add(record Record) []Record

	// Update merges patch fields into the record with the given id, leaving
	// other records untouched. Silently a no-op when no record matches.
	Update(id int, patch Patch) []Record

	// Remove deletes the record with the given id without reordering the
	// survivors; no-op when absent.
	Remove(id int) []Record

	// Snapshot returns a copy of the current collection.
	Snapshot() []Record

	// Version returns a counter that increases on every effective mutation.
	Version() uint64
}
