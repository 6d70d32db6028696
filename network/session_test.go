package network

import (
	"testing"
	"time"
)

type fakeConn struct {
	state       ClientState
	connects    int
	disconnects int
}

func (f *fakeConn) State() ClientState { return f.state }

func (f *fakeConn) Connect(address, version, userID, token string) {
	f.connects++
	f.state = StateConnecting
}

func (f *fakeConn) Disconnect() {
	f.disconnects++
	f.state = StateDisconnected
}

func newTestSession() (*Session, *fakeConn) {
	s := NewSession("localhost:8080", "test", "fox-1", "", 50*time.Millisecond, 3*time.Second)
	fc := &fakeConn{}
	s.conn = fc
	return s, fc
}

func TestSessionMaintain(t *testing.T) {
	start := time.Unix(100, 0)

	tests := []struct {
		name    string
		state   ClientState
		offline bool
		after   time.Duration
		want    bool
	}{
		{"error after delay", StateError, false, 3 * time.Second, true},
		{"dropped after delay", StateDisconnected, false, 4 * time.Second, true},
		{"error before delay", StateError, false, 2 * time.Second, false},
		{"offline", StateError, true, time.Minute, false},
		{"still connecting", StateConnecting, false, time.Minute, false},
		{"connected", StateConnected, false, time.Minute, false},
		{"authenticated", StateAuthenticated, false, time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fc := newTestSession()
			s.Connect(start)
			if tt.offline {
				s.Disconnect()
			}
			fc.state = tt.state
			connects := fc.connects

			if got := s.Maintain(start.Add(tt.after)); got != tt.want {
				t.Fatalf("Maintain = %v, want %v", got, tt.want)
			}
			if tt.want && fc.connects != connects+1 {
				t.Errorf("connects = %d, want %d", fc.connects, connects+1)
			}
			if !tt.want && fc.connects != connects {
				t.Errorf("unexpected dial, connects = %d", fc.connects)
			}
		})
	}
}

func TestSessionRetriesOncePerDelay(t *testing.T) {
	s, fc := newTestSession()
	now := time.Unix(0, 0)
	s.Connect(now)

	// The server keeps refusing; frames run every 16ms for 10s.
	for elapsed := time.Duration(0); elapsed <= 10*time.Second; elapsed += 16 * time.Millisecond {
		fc.state = StateError
		s.Maintain(now.Add(elapsed))
	}
	// Initial dial plus one retry per 3s.
	if fc.connects != 4 {
		t.Errorf("connects = %d, want 4", fc.connects)
	}
	if s.Attempts() != 4 {
		t.Errorf("Attempts = %d, want 4", s.Attempts())
	}
}

func TestSessionReconnectRearmsScheduler(t *testing.T) {
	s, fc := newTestSession()
	now := time.Unix(0, 0)
	s.Connect(now)
	if err := s.Scheduler.Mount(now, func() error { return nil }); err != nil {
		t.Fatal(err)
	}

	s.Reconnect(now.Add(time.Second))
	if s.Scheduler.Mounted() {
		t.Error("reconnect should re-arm the initial send")
	}
	if fc.disconnects != 1 || fc.connects != 2 {
		t.Errorf("disconnects=%d connects=%d, want 1 and 2", fc.disconnects, fc.connects)
	}

	s.Disconnect()
	if !s.Offline() {
		t.Error("manual disconnect should mark the session offline")
	}
	s.Connect(now.Add(2 * time.Second))
	if s.Offline() {
		t.Error("connecting again should clear offline")
	}
}
