// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package arena provides the append-only sibling store backing parser
// output. Elements live in insertion order under a single implicit root and
// are addressed by ordinal distance from the newest sibling.
package arena

import "slices"

// Arena is an ordered, append-only store of T with nth-from-end addressing.
// The zero value is ready to use.
type Arena[T any] struct {
	items []T
}

// Append inserts v as the newest sibling and returns its index.
func (a *Arena[T]) Append(v T) int {
	a.items = append(a.items, v)
	return len(a.items) - 1
}

// Len returns the number of live siblings.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// NthLast returns the sibling n positions back from the newest (0 = newest)
// without removing it. ok is false when n is out of range.
func (a *Arena[T]) NthLast(n int) (T, bool) {
	var zero T
	i := len(a.items) - 1 - n
	if n < 0 || i < 0 {
		return zero, false
	}
	return a.items[i], true
}

// RemoveNthLast removes the sibling n positions back from the newest,
// closing the gap. It reports whether anything was removed.
func (a *Arena[T]) RemoveNthLast(n int) bool {
	i := len(a.items) - 1 - n
	if n < 0 || i < 0 {
		return false
	}
	a.items = slices.Delete(a.items, i, i+1)
	return true
}

// At returns a pointer to the sibling at index i for in-place mutation.
func (a *Arena[T]) At(i int) *T {
	return &a.items[i]
}

// All returns the live siblings in insertion order. The slice aliases the
// arena; callers must not grow it.
func (a *Arena[T]) All() []T {
	return a.items
}

// Clone returns a deep copy (element-wise copy of the backing slice).
func (a *Arena[T]) Clone() *Arena[T] {
	return &Arena[T]{items: slices.Clone(a.items)}
}
