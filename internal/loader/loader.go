package loader

import (
	"context"
	"errors"

	"github.com/gleemora/survivors/internal/survivor"
)

// Status is the load status of a view.
type Status int

const (
	// StatusIdle means no fetch is outstanding; records are either empty or ready.
	StatusIdle Status = iota
	// StatusLoading means the one fetch attempt is outstanding.
	StatusLoading
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Result is the outcome of a fetch, handed from Fetch to Settle.
type Result struct {
	Records []survivor.Record
	Err     error
}

// StatusObserver is notified of every status transition.
type StatusObserver func(from, to Status)

// Option configures a Loader.
type Option func(*Loader)

// WithStatusObserver registers fn to receive status transitions.
func WithStatusObserver(fn StatusObserver) Option {
	return func(l *Loader) {
		l.observers = append(l.observers, fn)
	}
}

// Loader owns the record set of one view and its load status.
// It is not safe for concurrent use; the owning view serialises calls.
type Loader struct {
	source    Source
	status    Status
	started   bool
	settled   bool
	records   []survivor.Record
	err       error
	observers []StatusObserver
}

// New creates an idle Loader reading from source.
func New(source Source, opts ...Option) *Loader {
	l := &Loader{source: source, status: StatusIdle}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Begin marks the start of the one fetch attempt and sets status to Loading.
// It returns false if a load was already started; the state is then unchanged.
func (l *Loader) Begin() bool {
	if l.started {
		return false
	}
	l.started = true
	l.setStatus(StatusLoading)
	return true
}

// Fetch performs the network request. It reads only the immutable source, so it
// may run on another goroutine while the view keeps handling events.
func (l *Loader) Fetch(ctx context.Context) Result {
	records, err := l.source.Fetch(ctx)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		return Result{Err: err}
	}
	return Result{Records: records}
}

// Settle applies a fetch result: status returns to Idle unconditionally and the
// record set is replaced only when the fetch succeeded. Settling before Begin or
// settling twice is a no-op.
func (l *Loader) Settle(res Result) {
	if !l.started || l.settled {
		return
	}
	l.settled = true

	if res.Err != nil {
		l.err = res.Err
	} else {
		l.records = res.Records
	}
	l.setStatus(StatusIdle)
}

// Load runs Begin, Fetch and Settle synchronously and returns the fetch error.
func (l *Loader) Load(ctx context.Context) error {
	if !l.Begin() {
		return ErrAlreadyStarted
	}
	res := l.Fetch(ctx)
	l.Settle(res)
	return res.Err
}

// Status returns the current load status.
func (l *Loader) Status() Status {
	return l.status
}

// Loading reports whether the fetch is outstanding.
func (l *Loader) Loading() bool {
	return l.status == StatusLoading
}

// Started reports whether Begin has been called.
func (l *Loader) Started() bool {
	return l.started
}

// Settled reports whether the fetch result has been applied.
func (l *Loader) Settled() bool {
	return l.settled
}

// Records returns a copy of the loaded records.
func (l *Loader) Records() []survivor.Record {
	out := make([]survivor.Record, len(l.records))
	copy(out, l.records)
	return out
}

// Count returns the number of loaded records.
func (l *Loader) Count() int {
	return len(l.records)
}

// Err returns the fetch error, if the settled fetch failed.
func (l *Loader) Err() error {
	return l.err
}

// Failure classifies the settled load. An unsettled loader reports FailureNone.
func (l *Loader) Failure() FailureKind {
	if !l.settled {
		return FailureNone
	}
	return Classify(l.err, len(l.records))
}

// Canceled reports whether the settled fetch ended because its context was canceled.
func (l *Loader) Canceled() bool {
	return errors.Is(l.err, context.Canceled)
}

func (l *Loader) setStatus(to Status) {
	from := l.status
	l.status = to
	for _, fn := range l.observers {
		fn(from, to)
	}
}
