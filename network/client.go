package network

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/automoto/foxfield/logging"
	"github.com/automoto/foxfield/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

// ErrNotConnected is returned by SendMessage while no socket is open.
var ErrNotConnected = errors.New("not connected")

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	// StateAuthenticated means the server accepted our JoinRequest.
	StateAuthenticated
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateAuthenticated:
		return "authenticated"
	case StateError:
		return "error"
	}
	return "disconnected"
}

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	clientID  string
	tickRate  int
	conn      *websocket.Conn

	snapshotCh chan messages.Snapshot // size-1 buffered; latest wins
	rejected   int
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan messages.Snapshot, 1),
	}
}

// Connect dials the server in a background goroutine and authenticates with
// userID and token once the socket is open. A previous connection must be
// closed with Disconnect first.
func (c *Client) Connect(address, version, userID, token string) {
	log := logging.Named("client")

	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.clientID = ""
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Infow("connected to server", "address", address)
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{
			Version: version,
			UserID:  userID,
			Token:   token,
		}); err != nil {
			c.setError(fmt.Errorf("send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Infow("join accepted", "clientID", msg.ClientID, "tickRate", msg.TickRate)
		c.mu.Lock()
		c.clientID = msg.ClientID
		c.tickRate = msg.TickRate
		c.state = StateAuthenticated
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Warnw("join rejected", "reason", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, msg messages.Players) {
		c.handlePlayers(msg)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Infow("disconnected", "err", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Warnw("transport error", "err", err)
	})

	go func() {
		transport := transports.NewWsClientTransport(wsURL(address))
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

// handlePlayers validates a broadcast and keeps only the newest snapshot.
// Invalid entries are dropped one by one; the rest still goes through.
func (c *Client) handlePlayers(msg messages.Players) {
	snap, errs := msg.Snapshot()
	if len(errs) > 0 {
		c.mu.Lock()
		c.rejected += len(errs)
		c.mu.Unlock()
		for _, err := range errs {
			logging.Named("client").Debugw("dropping snapshot entry", "err", err)
		}
	}

	select { // drain stale, push latest
	case <-c.snapshotCh:
	default:
	}
	select {
	case c.snapshotCh <- snap:
	default:
	}
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()

	// A snapshot from the old session must not leak into the next one.
	select {
	case <-c.snapshotCh:
	default:
	}
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Authenticated reports whether the server accepted the join.
func (c *Client) Authenticated() bool {
	return c.State() == StateAuthenticated
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// ClientID is the id the server assigned on join, empty before that.
func (c *Client) ClientID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientID
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// RejectedEntries counts snapshot entries dropped as malformed.
func (c *Client) RejectedEntries() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rejected
}

// LatestSnapshot returns the most recent Snapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() messages.Snapshot {
	select {
	case snap := <-c.snapshotCh:
		return snap
	default:
		return nil
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	logging.Named("client").Warnw("connection error", "err", err)
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

func wsURL(address string) string {
	if strings.HasPrefix(address, "ws://") || strings.HasPrefix(address, "wss://") {
		return address
	}
	return "ws://" + address
}
