package domain

// NextID returns the identifier for the next locally created record: one
// past the highest id in the collection (1 on an empty collection). Deleted
// ids are never reused. The result is only valid against the snapshot it
// was computed from - recompute on every add-form open, never cache it
// across sessions.
func NextID(records []Record) int {
	maxID := 0
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}
