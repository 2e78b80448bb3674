package websockets

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/anyswap/ripple-signer/log"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Time allowed to connect to server.
	defaultDialTimeout = 5 * time.Second
)

// Remote is a websocket session with a rippled server.
type Remote struct {
	endpoint  string
	outgoing  chan Syncer
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	ws        *websocket.Conn
}

var _ Submitter = (*Remote)(nil)

// NewRemote returns a new remote session connected to the specified
// server endpoint URI. To close the connection, use Close().
func NewRemote(endpoint string, dialTimeout time.Duration) (*Remote, error) {
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}
	dialer := websocket.Dialer{
		HandshakeTimeout: dialTimeout,
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
	}
	ws, _, err := dialer.Dial(endpoint, nil)
	if err != nil {
		return nil, err
	}
	log.Info("connected to remote", "endpoint", endpoint)
	r := &Remote{
		endpoint: endpoint,
		outgoing: make(chan Syncer),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		ws:       ws,
	}
	go r.run()
	return r, nil
}

func (r *Remote) String() string {
	return r.endpoint
}

// Close shuts down the Remote session and blocks until all internal
// goroutines have been cleaned up.
// Any commands that are pending a response will return with an error.
func (r *Remote) Close() {
	r.closeOnce.Do(func() { close(r.quit) })
	<-r.done
}

// Submit synchronously submits a signed transaction blob.
func (r *Remote) Submit(blob []byte) (*SubmitResult, error) {
	cmd := newSubmitCommand(blob)
	if err := r.send(cmd); err != nil {
		return nil, err
	}
	<-cmd.Ready
	if cmd.CommandError != nil {
		return nil, cmd.CommandError
	}
	return cmd.Result, nil
}

func (r *Remote) send(cmd Syncer) error {
	select {
	case r.outgoing <- cmd:
		return nil
	case <-r.done:
		return ErrRemoteClosed
	}
}

// run owns all writes to the websocket and runs until Close() is called
// or the connection drops.
func (r *Remote) run() {
	inbound := make(chan []byte)
	pending := make(map[uint64]Syncer)
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		_ = r.ws.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeWait))
		r.ws.Close()

		// Cancel all pending commands with an error
		for _, c := range pending {
			c.Fail("Connection Closed")
		}

		// Drain the inbound channel and block until it is closed,
		// indicating that the readPump has returned.
		for range inbound {
		}
		close(r.done)

		// Commands queued after the loop stopped
		for {
			select {
			case c := <-r.outgoing:
				c.Fail("Connection Closed")
			default:
				return
			}
		}
	}()

	go func() {
		defer close(inbound)
		r.readPump(inbound)
	}()

	var response Command
	for {
		select {
		case <-r.quit:
			return

		case command := <-r.outgoing:
			b, err := json.Marshal(command)
			if err != nil {
				command.Fail(err.Error())
				continue
			}
			log.Trace("websocket send", "endpoint", r.endpoint, "message", string(b))
			_ = r.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := r.ws.WriteMessage(websocket.TextMessage, b); err != nil {
				log.Warn("websocket write failed", "endpoint", r.endpoint, "err", err)
				command.Fail(err.Error())
				return
			}
			pending[command.ID()] = command

		case in, ok := <-inbound:
			if !ok {
				log.Warn("connection closed by server", "endpoint", r.endpoint)
				return
			}
			response = Command{}
			if err := json.Unmarshal(in, &response); err != nil {
				log.Warn("bad websocket message", "endpoint", r.endpoint, "err", err)
				continue
			}
			if response.Type != "" && response.Type != "response" {
				log.Debug("ignore stream message", "endpoint", r.endpoint, "type", response.Type)
				continue
			}
			cmd, ok := pending[response.Id]
			if !ok {
				log.Warn("unexpected message", "endpoint", r.endpoint, "id", response.Id)
				continue
			}
			delete(pending, response.Id)
			if err := json.Unmarshal(in, cmd); err != nil {
				cmd.Fail(err.Error())
				continue
			}
			cmd.Done()

		case <-ticker.C:
			if err := r.ws.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeWait)); err != nil {
				log.Warn("websocket ping failed", "endpoint", r.endpoint, "err", err)
				return
			}
		}
	}
}

// readPump reads from the websocket and sends to inbound channel.
// Expects to receive PONGs at specified interval, or logs an error and returns.
func (r *Remote) readPump(inbound chan<- []byte) {
	_ = r.ws.SetReadDeadline(time.Now().Add(pongWait))
	r.ws.SetPongHandler(func(string) error { return r.ws.SetReadDeadline(time.Now().Add(pongWait)) })
	for {
		_, message, err := r.ws.ReadMessage()
		if err != nil {
			log.Debug("websocket read stopped", "endpoint", r.endpoint, "err", err)
			return
		}
		log.Trace("websocket receive", "endpoint", r.endpoint, "message", string(message))
		_ = r.ws.SetReadDeadline(time.Now().Add(pongWait))
		inbound <- message
	}
}
