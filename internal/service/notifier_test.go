package service

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-user-directory/models"
)

func TestNotifier_FanOut(t *testing.T) {
	n := newNotifier()

	var a, b atomic.Int32
	unsubA := n.subscribe(func(models.UserEvent) { a.Add(1) })
	n.subscribe(func(models.UserEvent) { b.Add(1) })

	n.publish(models.UserEvent{Type: models.UserCreated, UserID: "u1"})
	unsubA()
	n.publish(models.UserEvent{Type: models.UserDeleted, UserID: "u1"})

	assert.Equal(t, int32(1), a.Load())
	assert.Equal(t, int32(2), b.Load())
}

func TestNotifier_SubscribeFromCallback(t *testing.T) {
	n := newNotifier()

	var nested atomic.Int32
	n.subscribe(func(models.UserEvent) {
		n.subscribe(func(models.UserEvent) { nested.Add(1) })
	})

	n.publish(models.UserEvent{Type: models.UserCreated})
	assert.Zero(t, nested.Load())

	n.publish(models.UserEvent{Type: models.UserCreated})
	assert.Equal(t, int32(1), nested.Load())
}

func TestNotifier_Concurrent(t *testing.T) {
	n := newNotifier()

	var received atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unsub := n.subscribe(func(models.UserEvent) { received.Add(1) })
			unsub()
		}()
		go func() {
			defer wg.Done()
			n.publish(models.UserEvent{Type: models.UserUpdated})
		}()
	}
	wg.Wait()

	assert.Zero(t, len(n.subs))
}
