package network

import (
	"time"

	"github.com/automoto/foxfield/logging"
)

// connection is the part of Client a Session drives.
type connection interface {
	State() ClientState
	Connect(address, version, userID, token string)
	Disconnect()
}

// Session owns the connection for the lifetime of the game. A reconnect
// throws the old socket away and dials a new one; nothing is resumed.
type Session struct {
	Client    *Client
	Scheduler *TickScheduler

	Address string
	Version string
	UserID  string
	Token   string

	// ReconnectDelay is the wait between a dropped or failed connection and
	// the next automatic dial.
	ReconnectDelay time.Duration

	conn connection
	// offline is set by a manual disconnect and stops auto reconnects.
	offline     bool
	lastAttempt time.Time
	attempts    int
}

func NewSession(address, version, userID, token string, tickInterval, reconnectDelay time.Duration) *Session {
	client := NewClient()
	return &Session{
		Client:         client,
		Scheduler:      NewTickScheduler(tickInterval),
		Address:        address,
		Version:        version,
		UserID:         userID,
		Token:          token,
		ReconnectDelay: reconnectDelay,
		conn:           client,
	}
}

// Connect dials the server.
func (s *Session) Connect(now time.Time) {
	s.offline = false
	s.lastAttempt = now
	s.attempts++
	logging.Named("session").Infow("connecting", "address", s.Address, "user", s.UserID, "attempt", s.attempts)
	s.conn.Connect(s.Address, s.Version, s.UserID, s.Token)
}

// Reconnect replaces the connection and re-arms the initial send.
func (s *Session) Reconnect(now time.Time) {
	s.conn.Disconnect()
	s.Scheduler.Reset()
	s.Connect(now)
}

// Disconnect closes the connection and keeps it closed until Reconnect.
func (s *Session) Disconnect() {
	s.offline = true
	s.conn.Disconnect()
	s.Scheduler.Reset()
}

// Offline reports whether the user disconnected on purpose.
func (s *Session) Offline() bool {
	return s.offline
}

// Attempts returns how many times the session has dialled.
func (s *Session) Attempts() int {
	return s.attempts
}

// Maintain reconnects after ReconnectDelay when the connection dropped or
// failed. It reports whether a new connection was started.
func (s *Session) Maintain(now time.Time) bool {
	if s.offline {
		return false
	}
	switch s.conn.State() {
	case StateDisconnected, StateError:
	default:
		return false
	}
	if now.Sub(s.lastAttempt) < s.ReconnectDelay {
		return false
	}
	s.Reconnect(now)
	return true
}
