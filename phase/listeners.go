// SPDX-License-Identifier: MIT

package phase

import "sync"

// listeners is the phase-level "probabilities changed" event.
type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
	ids  []int
}

func (l *listeners) add(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.next
	l.next++
	l.fns[id] = fn
	l.ids = append(l.ids, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.fns, id)
			for k, v := range l.ids {
				if v == id {
					l.ids = append(l.ids[:k], l.ids[k+1:]...)
					break
				}
			}
		})
	}
}

func (l *listeners) emit() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.ids))
	for _, id := range l.ids {
		fns = append(fns, l.fns[id])
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
