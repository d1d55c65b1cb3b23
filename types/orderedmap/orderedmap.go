// Package orderedmap provides a typed, insertion-ordered map used for help sections
// whose declaration order must survive (arguments, sub commands, catalog entries).
package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map"
)

// OrderedMap stores key-value pairs in insertion order. Overwriting an existing key
// keeps its original position.
type OrderedMap[K comparable, V any] struct {
	m *wk8.OrderedMap
}

// Iterator walks an OrderedMap from the oldest to the newest pair (or the reverse
// when obtained through Back).
type Iterator[K comparable, V any] struct {
	Key     K
	Value   V
	pair    *wk8.Pair
	forward bool
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{m: wk8.New()}
}

// Set stores val under key and returns the previous value, if any
func (o *OrderedMap[K, V]) Set(key K, val V) (V, bool) {
	old, present := o.m.Set(key, val)
	if !present {
		return *new(V), false
	}

	return old.(V), true
}

// Get returns the value stored under key
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	val, ok := o.m.Get(key)
	if !ok {
		return *new(V), false
	}

	return val.(V), true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, ok := o.m.Get(key)
	return ok
}

// Delete removes key and returns the value it held
func (o *OrderedMap[K, V]) Delete(key K) (V, bool) {
	val, ok := o.m.Delete(key)
	if !ok {
		return *new(V), false
	}

	return val.(V), true
}

// Len returns the number of stored pairs. A nil map has length 0.
func (o *OrderedMap[K, V]) Len() int {
	if o == nil || o.m == nil {
		return 0
	}

	return o.m.Len()
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.Len())
	for iter := o.Front(); iter != nil; iter = iter.Next() {
		keys = append(keys, iter.Key)
	}

	return keys
}

// Front returns an iterator positioned on the oldest pair, nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	if o.Len() == 0 {
		return nil
	}

	return newIterator[K, V](o.m.Oldest(), true)
}

// Back returns an iterator positioned on the newest pair, nil when the map is empty
func (o *OrderedMap[K, V]) Back() *Iterator[K, V] {
	if o.Len() == 0 {
		return nil
	}

	return newIterator[K, V](o.m.Newest(), false)
}

// Next advances the iterator and returns nil once the end is reached
func (n *Iterator[K, V]) Next() *Iterator[K, V] {
	if n == nil || n.pair == nil {
		return nil
	}

	next := n.pair.Next()
	if !n.forward {
		next = n.pair.Prev()
	}

	return newIterator[K, V](next, n.forward)
}

func newIterator[K comparable, V any](pair *wk8.Pair, forward bool) *Iterator[K, V] {
	if pair == nil {
		return nil
	}

	return &Iterator[K, V]{
		Key:     pair.Key.(K),
		Value:   pair.Value.(V),
		pair:    pair,
		forward: forward,
	}
}
