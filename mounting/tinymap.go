package mounting

import rendercore "github.com/wippyai/render-core"

// tinyMap is an extremely simple tag-keyed map optimized for the particular
// constraints of the differentiator: a dozen or so entries, insert-heavy
// workloads (a screenful of views appearing at once), and lookups during a
// single pass. A hash map's constant average complexity only pays off on
// non-trivial amounts of data; at this cardinality nothing beats a plain
// slice scan, and insertion is a bare append.
//
// Erasing tombstones the entry by writing the zero tag in place; the slice
// never compacts. Callers must never insert the zero tag.
type tinyMap[V any] struct {
	entries []tinyEntry[V]
}

type tinyEntry[V any] struct {
	key   rendercore.Tag
	value V
}

const tinyMapHint = 16

func newTinyMap[V any]() tinyMap[V] {
	return tinyMap[V]{entries: make([]tinyEntry[V], 0, tinyMapHint)}
}

// insert appends unconditionally. Key uniqueness is the caller's
// responsibility. The zero tag is the tombstone sentinel and is rejected.
func (m *tinyMap[V]) insert(key rendercore.Tag, value V) {
	if key == 0 {
		panic("mounting: tinyMap cannot store the zero tag")
	}
	m.entries = append(m.entries, tinyEntry[V]{key: key, value: value})
}

// find returns the index of the first live entry with the given key, or -1.
func (m *tinyMap[V]) find(key rendercore.Tag) int {
	for i := range m.entries {
		if m.entries[i].key == key {
			return i
		}
	}
	return -1
}

// at returns the value stored at a handle previously returned by find.
func (m *tinyMap[V]) at(i int) V {
	return m.entries[i].value
}

// erase tombstones the entry at a handle previously returned by find.
func (m *tinyMap[V]) erase(i int) {
	m.entries[i].key = 0
}
