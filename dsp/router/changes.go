package router

import (
	"errors"
	"fmt"
)

// ErrQueueFull is returned by Enqueue when the change queue has no room.
var ErrQueueFull = errors.New("change queue is full")

// maxRecordedErrs bounds the errors kept between two Err calls; later ones
// are dropped.
const maxRecordedErrs = 16

// Change is a topology or configuration edit applied by the processing
// goroutine between two blocks. It should be quick; any allocation-heavy
// preparation belongs on the caller's side.
type Change func(r *Router) error

// Enqueue schedules c for the start of the next Process call. It never
// blocks and is safe to call from any goroutine.
func (r *Router) Enqueue(c Change) error {
	if c == nil {
		return nil
	}

	select {
	case r.changes <- c:
		return nil
	default:
		return fmt.Errorf("%w (%d pending)", ErrQueueFull, cap(r.changes))
	}
}

// Pending returns the number of queued changes.
func (r *Router) Pending() int {
	return len(r.changes)
}

// ApplyChanges runs every queued change now and reports how many ran.
// Process calls it before each block.
func (r *Router) ApplyChanges() int {
	applied := 0

	for {
		select {
		case c := <-r.changes:
			err := c(r)
			if err != nil {
				r.recordErr(err)
			}

			r.stale = true
			applied++
		default:
			return applied
		}
	}
}

// Err returns the errors recorded by queued changes and failed compiles since
// the last call, joined, and clears them.
func (r *Router) Err() error {
	r.errMu.Lock()
	defer r.errMu.Unlock()

	err := errors.Join(r.errs...)
	r.errs = r.errs[:0]

	return err
}

func (r *Router) recordErr(err error) {
	r.errMu.Lock()
	if len(r.errs) < maxRecordedErrs {
		r.errs = append(r.errs, err)
	}
	r.errMu.Unlock()
}
