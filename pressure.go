package colorcatalog

import "sync"

// MemoryPressureSource delivers low-memory events from the host platform.
// Handlers registered with OnMemoryPressure are never removed.
type MemoryPressureSource interface {
	OnMemoryPressure(handler func())
}

// PressureNotifier is an in-process MemoryPressureSource. Hosts call Notify
// when they observe memory pressure, for example from a cgroup event or a
// signal handler.
//
// The zero value is ready to use. PressureNotifier is safe for concurrent use.
type PressureNotifier struct {
	mu       sync.Mutex
	handlers []func()
}

// OnMemoryPressure registers handler to run on every Notify.
func (n *PressureNotifier) OnMemoryPressure(handler func()) {
	if handler == nil {
		return
	}
	n.mu.Lock()
	n.handlers = append(n.handlers, handler)
	n.mu.Unlock()
}

// Notify runs every registered handler synchronously, in registration order.
func (n *PressureNotifier) Notify() {
	n.mu.Lock()
	handlers := make([]func(), len(n.handlers))
	copy(handlers, n.handlers)
	n.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}
