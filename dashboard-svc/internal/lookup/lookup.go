// Package lookup joins rows from different datasets by key. A miss is never an
// error: callers always get the fallback they supplied.
package lookup

// Index maps a key to the first row carrying it.
type Index[K comparable, V any] struct {
	rows map[K]V
}

// NewIndex keeps the first row for a duplicated key, matching a linear search.
func NewIndex[K comparable, V any](rows []V, key func(V) K) Index[K, V] {
	idx := Index[K, V]{rows: make(map[K]V, len(rows))}
	for _, row := range rows {
		k := key(row)
		if _, seen := idx.rows[k]; seen {
			continue
		}
		idx.rows[k] = row
	}
	return idx
}

func (i Index[K, V]) GetOr(key K, fallback V) V {
	if row, ok := i.rows[key]; ok {
		return row
	}
	return fallback
}

func (i Index[K, V]) Has(key K) bool {
	_, ok := i.rows[key]
	return ok
}

func (i Index[K, V]) Len() int {
	return len(i.rows)
}

// GroupBy collects rows per key, preserving input order inside each group.
func GroupBy[K comparable, V any](rows []V, key func(V) K) map[K][]V {
	groups := make(map[K][]V)
	for _, row := range rows {
		k := key(row)
		groups[k] = append(groups[k], row)
	}
	return groups
}
