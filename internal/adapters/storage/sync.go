package storage

import "fmt"

// SyncStats reports what an upsert did.
type SyncStats struct {
	Inserted int
	Updated  int
	Deleted  int
}

// Add accumulates other into s.
func (s *SyncStats) Add(other SyncStats) {
	s.Inserted += other.Inserted
	s.Updated += other.Updated
	s.Deleted += other.Deleted
}

// Upsert stores every item, inserting new keys and replacing every field
// of existing ones. Nothing is deleted.
func Upsert[V any](t *Table[V], items []V, keyOf func(V) Key) SyncStats {
	var stats SyncStats
	for _, item := range items {
		rec, inserted := t.FindOrInsert(keyOf(item))
		rec.Update(item)
		if inserted {
			stats.Inserted++
		} else {
			stats.Updated++
		}
	}
	return stats
}

// UpsertAndPrune makes scope hold exactly items: each item is upserted and
// every stored record in scope whose key is not among them is deleted.
// The scope then iterates in the order of items. Items outside scope are
// rejected before anything changes. A repeated key is stored once with its
// last value, at its last position.
func UpsertAndPrune[V any](t *Table[V], scope Scope, items []V, keyOf func(V) Key) (SyncStats, error) {
	keep := make(map[Key]struct{}, len(items))
	for _, item := range items {
		k := keyOf(item)
		if k.Scope() != scope {
			return SyncStats{}, fmt.Errorf("%s: record %s is outside scope %d/%d",
				t.Name(), k, scope.SiteID, scope.ParentID)
		}
		keep[k] = struct{}{}
	}

	var stats SyncStats
	seen := make(map[Key]struct{}, len(items))
	for _, item := range items {
		k := keyOf(item)
		rec, inserted := t.FindOrInsert(k)
		rec.Update(item)
		t.moveToEnd(k)
		switch _, dup := seen[k]; {
		case dup:
		case inserted:
			stats.Inserted++
		default:
			stats.Updated++
		}
		seen[k] = struct{}{}
	}

	for _, k := range t.Keys(scope) {
		if _, ok := keep[k]; !ok {
			t.Delete(k)
			stats.Deleted++
		}
	}
	return stats, nil
}
