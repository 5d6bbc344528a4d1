// This file implements LRU eviction.

package eviction

import "iter"

// lruNode represents ONE key inside the LRU structure. We use a doubly-linked list to track usage order.
type lruNode[K comparable] struct {
	// key is the cache key this node represents
	key K

	// prev points to the node that was used just after this one
	prev *lruNode[K]

	// next points to the node that was used just before this one
	next *lruNode[K]
}

// LRU is the concrete implementation of the LRU recency policy.
type LRU[K comparable] struct {
	// nodes maps cache keys to their corresponding list nodes.
	// This allows us to find and move nodes in O(1) time.
	nodes map[K]*lruNode[K]

	// head points to the MOST recently used key
	head *lruNode[K]

	// tail points to the LEAST recently used key
	tail *lruNode[K]
}

// NewLRU returns an empty LRU list.
func NewLRU[K comparable]() *LRU[K] {
	return &LRU[K]{nodes: make(map[K]*lruNode[K])}
}

// OnGet is called whenever a key is read from the cache. If a key is accessed, it becomes "recently used".
// So we: Find its node and move it to the front of the list
func (l *LRU[K]) OnGet(k K) {
	if n, ok := l.nodes[k]; ok {
		l.moveToFront(n)
	}
}

// OnPut is called whenever a key is written.
// - If the key already exists, it is moved to the front (a rewrite counts as a use)
// - If the key is new: Create a node and add it to the front (most recently used)
func (l *LRU[K]) OnPut(k K) {
	if n, ok := l.nodes[k]; ok {
		l.moveToFront(n)
		return
	}

	n := &lruNode[K]{key: k}
	l.nodes[k] = n
	l.addFront(n)
}

// Evict removes the LEAST recently used key.
// That key is always at the tail of the list.
func (l *LRU[K]) Evict() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}

	k := l.tail.key
	l.remove(l.tail)
	delete(l.nodes, k)

	return k, true
}

// Remove is called when a key is explicitly removed (not evicted due to capacity).
// This keeps LRU’s internal state consistent.
func (l *LRU[K]) Remove(k K) {
	if n, ok := l.nodes[k]; ok {
		l.remove(n)
		delete(l.nodes, k)
	}
}

// Keys walks the list from tail to head, i.e. least recently used first.
// The next node is captured before yielding, so the caller may remove the
// key it was just handed.
func (l *LRU[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := l.tail; n != nil; {
			newer := n.prev
			if !yield(n.key) {
				return
			}
			n = newer
		}
	}
}

// Len returns the number of tracked keys.
func (l *LRU[K]) Len() int {
	return len(l.nodes)
}

// Clear drops the whole list.
func (l *LRU[K]) Clear() {
	l.nodes = make(map[K]*lruNode[K])
	l.head = nil
	l.tail = nil
}

// addFront adds a node to the front of the linked list. This marks the node as "most recently used".
func (l *LRU[K]) addFront(n *lruNode[K]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n

	// If the list was empty, head and tail are the same
	if l.tail == nil {
		l.tail = n
	}
}

// remove unlinks a node, fixing up head and tail if needed.
func (l *LRU[K]) remove(n *lruNode[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
}

// moveToFront is used when a key is accessed.
func (l *LRU[K]) moveToFront(n *lruNode[K]) {
	if l.head == n {
		return
	}
	l.remove(n)
	l.addFront(n)
}

// A compile-time check that LRU satisfies Policy.
var _ Policy[string] = (*LRU[string])(nil)
