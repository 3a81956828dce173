package service

import (
	"sync"

	"github.com/MKhiriev/go-user-directory/models"
)

// notifier fans user events out to subscribers. Callbacks run synchronously
// on the publishing goroutine, outside any directory lock.
type notifier struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(models.UserEvent)
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]func(models.UserEvent))}
}

func (n *notifier) subscribe(fn func(models.UserEvent)) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
		})
	}
}

func (n *notifier) publish(event models.UserEvent) {
	n.mu.RLock()
	subs := make([]func(models.UserEvent), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.RUnlock()

	for _, fn := range subs {
		fn(event)
	}
}
