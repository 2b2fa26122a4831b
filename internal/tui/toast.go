package tui

import "sync"

// Toaster keeps the latest success notification until the view shows it.
type Toaster struct {
	mu   sync.Mutex
	last string
}

func (t *Toaster) Success(message string) {
	t.mu.Lock()
	t.last = message
	t.mu.Unlock()
}

// Take returns the pending message and clears it.
func (t *Toaster) Take() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	msg := t.last
	t.last = ""
	return msg
}
