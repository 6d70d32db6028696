package network

import "time"

// TickScheduler throttles outbound sends to a fixed interval, independent of
// the frame rate. It is driven from the frame loop and is not safe for
// concurrent use.
type TickScheduler struct {
	Interval time.Duration

	lastSend time.Time
	mounted  bool

	// Pending is set when the last send failed. The next tick boundary
	// sends again with whatever intent is current then.
	Pending bool
	LastErr error
	Sent    int
	Dropped int
}

// NewTickScheduler returns a scheduler that sends every interval.
func NewTickScheduler(interval time.Duration) *TickScheduler {
	return &TickScheduler{Interval: interval}
}

// Mounted reports whether the initial send has happened.
func (s *TickScheduler) Mounted() bool {
	return s.mounted
}

// Mount sends once, outside the throttle, so the server has the initial
// state without waiting a full interval. Later calls do nothing until Reset.
func (s *TickScheduler) Mount(now time.Time, send func() error) error {
	if s.mounted {
		return nil
	}
	s.mounted = true
	return s.emit(now, send)
}

// Due reports whether a tick boundary has been reached.
func (s *TickScheduler) Due(now time.Time) bool {
	return s.mounted && now.Sub(s.lastSend) >= s.Interval
}

// Tick sends if a boundary has been reached and reports whether it tried.
func (s *TickScheduler) Tick(now time.Time, send func() error) (bool, error) {
	if !s.Due(now) {
		return false, nil
	}
	return true, s.emit(now, send)
}

// Reset forgets the mount, e.g. when the connection is replaced.
func (s *TickScheduler) Reset() {
	s.mounted = false
	s.lastSend = time.Time{}
	s.Pending = false
	s.LastErr = nil
}

func (s *TickScheduler) emit(now time.Time, send func() error) error {
	// The clock restarts even on failure, so a dead socket is retried once
	// per interval and not every frame.
	s.lastSend = now
	if err := send(); err != nil {
		s.Pending = true
		s.LastErr = err
		s.Dropped++
		return err
	}
	s.Pending = false
	s.LastErr = nil
	s.Sent++
	return nil
}
