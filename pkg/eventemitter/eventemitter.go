package eventemitter

import "sync"

// EventEmitter delivers every emitted message to its subscribers, in
// subscription order, on the goroutine that calls Emit.
type EventEmitter[T any] struct {
	mutex       sync.Mutex
	subscribers []func(T)
}

func (eventEmitter *EventEmitter[T]) Emit(message T) {
	eventEmitter.mutex.Lock()
	subscribers := make([]func(T), len(eventEmitter.subscribers))
	copy(subscribers, eventEmitter.subscribers)
	eventEmitter.mutex.Unlock()

	for _, callback := range subscribers {
		callback(message)
	}
}

func (eventEmitter *EventEmitter[T]) Subscribe(callback func(T)) {
	if callback == nil {
		panic("Callback is nil")
	}
	eventEmitter.mutex.Lock()
	defer eventEmitter.mutex.Unlock()
	eventEmitter.subscribers = append(eventEmitter.subscribers, callback)
}
