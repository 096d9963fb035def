package storage

// Record is a handle on one stored row inside a write transaction. It reads
// and writes through copies, so no caller ever holds a reference into the
// table.
type Record[V any] struct {
	table *Table[V]
	key   Key
}

// Key returns the record's natural key.
func (r *Record[V]) Key() Key {
	return r.key
}

// Update replaces every field of the stored value with v's.
func (r *Record[V]) Update(v V) {
	r.table.put(r.key, cloneValue(&v))
}

// ReadOnly returns a copy of the stored value.
func (r *Record[V]) ReadOnly() V {
	v, _ := r.table.Get(r.key)
	return v
}
