// SPDX-License-Identifier: MIT

package probability

import "sync"

// notifier is the "updated" event of a model: an ordered callback list with
// no payload. Consumers re-read W and P themselves.
type notifier struct {
	mu    sync.Mutex
	next  int
	order []int
	subs  map[int]func()
}

// subscribe registers fn and returns an idempotent cancel function.
func (n *notifier) subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[id] = fn
	n.order = append(n.order, id)

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if _, ok := n.subs[id]; !ok {
			return
		}
		delete(n.subs, id)
		for k, v := range n.order {
			if v == id {
				n.order = append(n.order[:k], n.order[k+1:]...)
				break
			}
		}
	}
}

// emit calls every subscriber in registration order. The list is copied
// first so callbacks may subscribe or cancel without deadlocking.
func (n *notifier) emit() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.order))
	for _, id := range n.order {
		fns = append(fns, n.subs[id])
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
