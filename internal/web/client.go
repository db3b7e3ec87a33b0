package web

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/chongchonghe/acap/internal/logger"
	"github.com/chongchonghe/acap/internal/repl"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// Client is one WebSocket connection bound to a calculator session.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan *Message
	session *repl.Session
	log     *logger.Logger
}

// NewClient wraps an upgraded connection.
func NewClient(hub *Hub, conn *websocket.Conn, session *repl.Session, log *logger.Logger) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan *Message, 64),
		session: session,
		log:     log,
	}
}

// ReadPump pumps inputs from the connection through the session.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Error("websocket read error: %v", err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.log.Warn("websocket: bad message: %v", err)
			continue
		}
		c.handleMessage(&msg)
	}
}

// WritePump pumps results back to the connection and keeps it alive.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			data, err := json.Marshal(msg)
			if err != nil {
				c.log.Error("websocket: marshal failed: %v", err)
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(msg *Message) {
	switch msg.Type {
	case MessageTypeInput:
		c.respond(msg.Input, c.session.Process(msg.Input))

	case MessageTypeReset:
		c.session.Reset()
		c.sendMessage(&Message{Type: MessageTypeNotice, Text: "session cleared"})

	default:
		c.log.Warn("websocket: unknown message type %q", msg.Type)
	}
}

func (c *Client) respond(input string, out repl.Outcome) {
	switch {
	case out.Quit, out.Empty:
		return
	case out.Recall != "":
		// The browser has no editable prompt; recalled input runs directly.
		c.respond(out.Recall, c.session.Process(out.Recall))
		return
	case out.Notice != "":
		c.sendMessage(&Message{Type: MessageTypeNotice, Text: out.Notice})
		return
	case out.Err != nil:
		c.sendMessage(&Message{Type: MessageTypeError, Input: input, Text: out.Err.Error()})
		return
	}

	c.sendMessage(&Message{
		Type:      MessageTypeResult,
		Input:     out.Input,
		Parsed:    out.Parsed,
		SI:        out.SI,
		CGS:       out.CGS,
		Converted: out.Converted,
	})
}

func (c *Client) sendMessage(msg *Message) {
	select {
	case c.send <- msg:
	default:
		c.log.Warn("websocket: send channel full, dropping message")
	}
}
