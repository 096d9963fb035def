package storage

import (
	"fmt"
	"slices"

	"github.com/goccy/go-json"
	"github.com/tiendc/go-deepcopy"

	"github.com/jsamuelsen11/storesync/internal/domain"
)

// Table is an indexed arena of records keyed by natural key, with a
// secondary index by scope. Rows iterate in first-insertion order unless
// UpsertAndPrune re-sequences their scope. A Table
// reached through a View is never mutated; only a Tx hands out mutable ones.
type Table[V any] struct {
	name   string
	seq    uint64
	rows   map[Key]row[V]
	scopes map[Scope]map[Key]struct{}
}

type row[V any] struct {
	seq   uint64
	value V
}

// persistedRow is the snapshot encoding of one row.
type persistedRow[V any] struct {
	Key   Key `json:"key"`
	Value V   `json:"value"`
}

func newTable[V any](name string) *Table[V] {
	return &Table[V]{
		name:   name,
		rows:   make(map[Key]row[V]),
		scopes: make(map[Scope]map[Key]struct{}),
	}
}

// Name returns the table name used in snapshots and metrics.
func (t *Table[V]) Name() string {
	return t.name
}

// Len returns the number of rows.
func (t *Table[V]) Len() int {
	return len(t.rows)
}

// Find returns the record stored under key.
func (t *Table[V]) Find(key Key) (*Record[V], bool) {
	if _, ok := t.rows[key]; !ok {
		return nil, false
	}
	return &Record[V]{table: t, key: key}, true
}

// Get returns a copy of the value stored under key.
func (t *Table[V]) Get(key Key) (V, bool) {
	r, ok := t.rows[key]
	if !ok {
		var zero V
		return zero, false
	}
	return cloneValue(&r.value), true
}

// InsertNew inserts a zero-valued record under key. It fails with
// domain.ErrConflict when the key is taken; use FindOrInsert to upsert.
func (t *Table[V]) InsertNew(key Key) (*Record[V], error) {
	if _, ok := t.rows[key]; ok {
		return nil, fmt.Errorf("%s: record %s: %w", t.name, key, domain.ErrConflict)
	}
	var zero V
	t.put(key, zero)
	return &Record[V]{table: t, key: key}, nil
}

// FindOrInsert returns the record under key, inserting a zero-valued one
// first if needed. inserted reports which happened.
func (t *Table[V]) FindOrInsert(key Key) (rec *Record[V], inserted bool) {
	if rec, ok := t.Find(key); ok {
		return rec, false
	}
	rec, _ = t.InsertNew(key)
	return rec, true
}

// Delete removes the record under key and reports whether it existed.
func (t *Table[V]) Delete(key Key) bool {
	if _, ok := t.rows[key]; !ok {
		return false
	}
	delete(t.rows, key)
	scope := key.Scope()
	if idx := t.scopes[scope]; idx != nil {
		delete(idx, key)
		if len(idx) == 0 {
			delete(t.scopes, scope)
		}
	}
	return true
}

// DeleteWhere removes every record matching pred and returns how many went.
func (t *Table[V]) DeleteWhere(pred func(Key, V) bool) int {
	var doomed []Key
	for k, r := range t.rows {
		if pred(k, r.value) {
			doomed = append(doomed, k)
		}
	}
	for _, k := range doomed {
		t.Delete(k)
	}
	return len(doomed)
}

// DeleteScope removes every record in scope.
func (t *Table[V]) DeleteScope(scope Scope) int {
	keys := t.Keys(scope)
	for _, k := range keys {
		t.Delete(k)
	}
	return len(keys)
}

// CountWhere counts records matching pred.
func (t *Table[V]) CountWhere(pred func(Key, V) bool) int {
	n := 0
	for k, r := range t.rows {
		if pred(k, r.value) {
			n++
		}
	}
	return n
}

// Count returns the number of records in scope.
func (t *Table[V]) Count(scope Scope) int {
	return len(t.scopes[scope])
}

// Keys returns the keys in scope in insertion order.
func (t *Table[V]) Keys(scope Scope) []Key {
	idx := t.scopes[scope]
	keys := make([]Key, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	t.sortBySeq(keys)
	return keys
}

// Values returns copies of the values in scope, in insertion order.
func (t *Table[V]) Values(scope Scope) []V {
	keys := t.Keys(scope)
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		r := t.rows[k]
		out = append(out, cloneValue(&r.value))
	}
	return out
}

// All returns copies of every value, in insertion order.
func (t *Table[V]) All() []V {
	keys := make([]Key, 0, len(t.rows))
	for k := range t.rows {
		keys = append(keys, k)
	}
	t.sortBySeq(keys)
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		r := t.rows[k]
		out = append(out, cloneValue(&r.value))
	}
	return out
}

func (t *Table[V]) put(key Key, v V) {
	if r, ok := t.rows[key]; ok {
		t.rows[key] = row[V]{seq: r.seq, value: v}
		return
	}
	t.seq++
	t.rows[key] = row[V]{seq: t.seq, value: v}
	scope := key.Scope()
	idx := t.scopes[scope]
	if idx == nil {
		idx = make(map[Key]struct{})
		t.scopes[scope] = idx
	}
	idx[key] = struct{}{}
}

// moveToEnd gives the row under key the next sequence number, so it
// iterates after every other row.
func (t *Table[V]) moveToEnd(key Key) {
	r, ok := t.rows[key]
	if !ok {
		return
	}
	t.seq++
	r.seq = t.seq
	t.rows[key] = r
}

func (t *Table[V]) sortBySeq(keys []Key) {
	slices.SortFunc(keys, func(a, b Key) int {
		sa, sb := t.rows[a].seq, t.rows[b].seq
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		default:
			return 0
		}
	})
}

// clone copies the table structure. Stored values are shared: they are
// replaced wholesale on update, never mutated in place.
func (t *Table[V]) clone() *Table[V] {
	c := &Table[V]{
		name:   t.name,
		seq:    t.seq,
		rows:   make(map[Key]row[V], len(t.rows)),
		scopes: make(map[Scope]map[Key]struct{}, len(t.scopes)),
	}
	for k, r := range t.rows {
		c.rows[k] = r
	}
	for s, idx := range t.scopes {
		cidx := make(map[Key]struct{}, len(idx))
		for k := range idx {
			cidx[k] = struct{}{}
		}
		c.scopes[s] = cidx
	}
	return c
}

func (t *Table[V]) marshal() ([]byte, error) {
	keys := make([]Key, 0, len(t.rows))
	for k := range t.rows {
		keys = append(keys, k)
	}
	t.sortBySeq(keys)

	rows := make([]persistedRow[V], 0, len(keys))
	for _, k := range keys {
		rows = append(rows, persistedRow[V]{Key: k, Value: t.rows[k].value})
	}
	return json.Marshal(rows)
}

func (t *Table[V]) unmarshal(data []byte) error {
	var rows []persistedRow[V]
	if err := json.Unmarshal(data, &rows); err != nil {
		return &domain.DecodeError{Entity: t.name, Reason: err.Error()}
	}
	restored := newTable[V](t.name)
	for _, r := range rows {
		restored.put(r.Key, r.Value)
	}
	*t = *restored
	return nil
}

// cloneValue deep-copies v so callers never alias stored data. Domain values
// are plain data, so a copy failure is a programming error.
func cloneValue[V any](v *V) V {
	var out V
	if err := deepcopy.Copy(&out, v); err != nil {
		panic(fmt.Sprintf("storage: copying %T: %v", out, err))
	}
	return out
}
