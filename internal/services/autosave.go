package services

import (
	"context"
	"log"
	"sync"
	"time"

	"job-email-generator/internal/transport/dto"
)

// DefaultAutoSaveDelay is the trailing-edge debounce window for autosave.
const DefaultAutoSaveDelay = 2 * time.Second

// AutoSaver coalesces rapid resume edits into one save per user. Each
// Schedule call resets the user's timer; when the window elapses without
// another call, the most recent payload is saved. Earlier payloads within
// the window are dropped, matching the whole-document overwrite model.
type AutoSaver struct {
	resumes ResumeService
	delay   time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewAutoSaver creates an AutoSaver. A non-positive delay falls back to
// DefaultAutoSaveDelay.
func NewAutoSaver(resumes ResumeService, delay time.Duration) *AutoSaver {
	if delay <= 0 {
		delay = DefaultAutoSaveDelay
	}
	return &AutoSaver{
		resumes: resumes,
		delay:   delay,
		pending: make(map[string]*time.Timer),
	}
}

// Schedule queues a save of req for userID after the debounce window.
// Calling again before the window elapses discards the previous payload.
func (a *AutoSaver) Schedule(userID string, req *dto.SaveResumeRequest) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if t, ok := a.pending[userID]; ok {
		t.Stop()
	}
	a.pending[userID] = time.AfterFunc(a.delay, func() {
		a.mu.Lock()
		delete(a.pending, userID)
		a.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := a.resumes.Save(ctx, userID, req); err != nil {
			log.Printf("Autosave failed for user %s: %v", userID, err)
		}
	})
}

// Cancel drops any pending save for userID without executing it. Used when
// the user saves explicitly or deletes their account mid-window.
func (a *AutoSaver) Cancel(userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if t, ok := a.pending[userID]; ok {
		t.Stop()
		delete(a.pending, userID)
	}
}

// Stop cancels every pending save. Called on shutdown; queued edits that
// have not fired are lost, same as closing the browser tab.
func (a *AutoSaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for userID, t := range a.pending {
		t.Stop()
		delete(a.pending, userID)
	}
}
