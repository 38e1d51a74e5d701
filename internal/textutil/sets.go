package textutil

import (
	orderedset "github.com/emirpasic/gods/sets/linkedhashset"
)

// OrderedStringSet is an insertion-ordered set of strings, backed by a
// slice plus a map index. Shape is the teacher's orderedStringSet idiom;
// the type holds strings only and is not generic.
type OrderedStringSet struct {
	items []string
	index map[string]int
}

// NewOrderedStringSet builds a set from the given elements, preserving the
// order of first occurrence and dropping later duplicates.
func NewOrderedStringSet(elements ...string) *OrderedStringSet {
	s := &OrderedStringSet{index: make(map[string]int)}
	for _, e := range elements {
		s.Add(e)
	}
	return s
}

// Add appends item if not already present; returns true if it was added.
func (s *OrderedStringSet) Add(item string) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// Contains reports set membership.
func (s *OrderedStringSet) Contains(item string) bool {
	_, ok := s.index[item]
	return ok
}

// Values returns the elements in insertion order. The caller must not
// mutate the returned slice.
func (s *OrderedStringSet) Values() []string {
	return s.items
}

// Len returns the number of elements.
func (s *OrderedStringSet) Len() int {
	return len(s.items)
}

// Remove drops item from the set, if present, preserving relative order of
// the rest.
func (s *OrderedStringSet) Remove(item string) bool {
	idx, ok := s.index[item]
	if !ok {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	delete(s.index, item)
	for k, v := range s.index {
		if v > idx {
			s.index[k] = v - 1
		}
	}
	return true
}

// HashOrderedSet wraps gods' linkedhashset for the membership-heavy sets
// the metadata cache builds (declared options, flavors, USES entries, ...),
// mirroring selection.go's choice of container for the same kind of
// problem (fast Contains, stable iteration order).
type HashOrderedSet struct {
	set *orderedset.Set
}

// NewHashOrderedSet builds a HashOrderedSet from the given elements.
func NewHashOrderedSet(elements ...string) *HashOrderedSet {
	s := &HashOrderedSet{set: orderedset.New()}
	for _, e := range elements {
		s.set.Add(e)
	}
	return s
}

// Add inserts item into the set.
func (s *HashOrderedSet) Add(item string) {
	s.set.Add(item)
}

// Contains reports set membership.
func (s *HashOrderedSet) Contains(item string) bool {
	return s.set.Contains(item)
}

// Values returns the elements in insertion order.
func (s *HashOrderedSet) Values() []string {
	raw := s.set.Values()
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i] = v.(string)
	}
	return out
}

// Len returns the number of elements.
func (s *HashOrderedSet) Len() int {
	return s.set.Size()
}
