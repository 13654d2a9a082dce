package domain

import (
	"context"
	"sync"
)

// TransferEvent is a single update from an in-flight upload: either a
// progress report or the terminal result.
type TransferEvent struct {
	Percent float64 // 0-100, non-decreasing
	Done    bool    // true for the terminal event
	URL     string  // public URL, set on successful completion
	Err     error   // set on terminal failure
}

// Transfer represents one cancellable upload. Progress events are delivered
// in non-decreasing order followed by exactly one terminal event, after which
// the channel is closed. The storage collaborator's stream is treated as
// at-least-once: duplicate terminal reports and regressing percentages are
// absorbed here.
type Transfer struct {
	events chan TransferEvent
	cancel context.CancelFunc

	mu   sync.Mutex
	last float64

	terminal sync.Once
}

// NewTransfer creates a Transfer whose Cancel aborts the upload context
func NewTransfer(cancel context.CancelFunc) *Transfer {
	return &Transfer{
		events: make(chan TransferEvent, 16),
		cancel: cancel,
	}
}

// Events returns the event stream. It is closed after the terminal event.
func (t *Transfer) Events() <-chan TransferEvent {
	return t.events
}

// Cancel aborts the transfer. The terminal event reports ErrUploadCancelled.
func (t *Transfer) Cancel() {
	if t.cancel != nil {
		t.cancel()
	}
}

// ReportProgress publishes a progress percentage. Values are clamped to
// [0,100] and reports below the high-water mark are dropped. Progress is
// capped just under 100 so that exactly 100 is only ever reported by Complete.
func (t *Transfer) ReportProgress(percent float64) {
	if percent < 0 {
		percent = 0
	}
	if percent > 99.9 {
		percent = 99.9
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if percent < t.last {
		return
	}
	t.last = percent

	// Drop intermediate reports when the consumer lags. The last buffer
	// slot stays free so the terminal event can always be delivered.
	if len(t.events) < cap(t.events)-1 {
		t.events <- TransferEvent{Percent: percent}
	}
}

// Complete publishes the successful terminal event. Later terminal calls
// are ignored.
func (t *Transfer) Complete(url string) {
	t.terminal.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.events <- TransferEvent{Percent: 100, Done: true, URL: url}
		close(t.events)
	})
}

// Fail publishes the failed terminal event. Later terminal calls are ignored.
func (t *Transfer) Fail(err error) {
	t.terminal.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.events <- TransferEvent{Percent: t.last, Done: true, Err: err}
		close(t.events)
	})
}
