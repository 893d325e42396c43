// Package store holds the authoritative in-memory collections for the
// session. It is constructed once at startup and handed to whichever
// service needs it; nothing reaches for it through package globals.
package store

import (
	"sort"
	"sync"
)

// Store owns the lock shared by every collection so concurrent readers
// always observe a consistent snapshot, never a torn mid-mutation state.
type Store struct {
	mu sync.RWMutex
}

func New() *Store {
	return &Store{}
}

// Collection is a typed view over the shared session state, keyed by the
// integer id the remote service assigns on create.
type Collection[T any] struct {
	store *Store
	items map[int]T
	getID func(T) int
	setID func(*T, int)
}

func NewCollection[T any](store *Store, getID func(T) int, setID func(*T, int)) *Collection[T] {
	return &Collection[T]{
		store: store,
		items: map[int]T{},
		getID: getID,
		setID: setID,
	}
}

// List returns a copy of the collection ordered by ascending id. Reads
// never fail; an empty collection yields an empty slice.
func (c *Collection[T]) List() []T {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return c.sortedLocked(false)
}

// ListDesc returns a copy ordered by descending id (newest first).
func (c *Collection[T]) ListDesc() []T {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return c.sortedLocked(true)
}

func (c *Collection[T]) Get(id int) (T, bool) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

func (c *Collection[T]) Len() int {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return len(c.items)
}

// Insert stores the item and returns it as stored. An item arriving with a
// zero id (the remote create did not return one) gets the local fallback
// id: max existing id + 1, or 1 when the collection is empty. This keeps
// the session usable offline but is not coordinated with the remote id
// space, so it is degraded-mode behavior, not a correctness guarantee.
func (c *Collection[T]) Insert(item T) T {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if c.getID(item) == 0 {
		c.setID(&item, c.nextIDLocked())
	}
	c.items[c.getID(item)] = item
	return item
}

// Replace applies the mutation to the stored item. The second return is
// false when the id is unknown; the collection is left untouched.
func (c *Collection[T]) Replace(id int, apply func(*T)) (T, bool) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	apply(&item)
	c.items[id] = item
	return item, true
}

// Remove deletes the item, reporting false when the id is unknown.
func (c *Collection[T]) Remove(id int) (T, bool) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	delete(c.items, id)
	return item, true
}

// SetAll replaces the whole collection, used when hydrating from the
// remote service at startup.
func (c *Collection[T]) SetAll(items []T) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	c.items = make(map[int]T, len(items))
	for _, item := range items {
		c.items[c.getID(item)] = item
	}
}

func (c *Collection[T]) nextIDLocked() int {
	next := 1
	for id := range c.items {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

func (c *Collection[T]) sortedLocked(desc bool) []T {
	ids := make([]int, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	if desc {
		sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	} else {
		sort.Ints(ids)
	}

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.items[id])
	}
	return out
}
