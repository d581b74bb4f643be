package spectate

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/ferris-fighter/constants"
)

// connection wraps one viewer socket with its outgoing buffer
type connection struct {
	ws        *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

func newConnection(ws *websocket.Conn) *connection {
	return &connection{
		ws:   ws,
		send: make(chan []byte, constants.SpectateClientBuffer),
	}
}

// trySend queues a message without blocking; false means the viewer fell behind
func (c *connection) trySend(msg []byte) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// close ends the write pump; the hub lock guarantees no send follows
func (c *connection) close() {
	c.closeOnce.Do(func() { close(c.send) })
}

// readPump discards viewer input and returns when the socket closes
func (c *connection) readPump() {
	defer c.ws.Close()
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("spectate read: %v", err)
			}
			return
		}
	}
}

// writePump drains the send buffer into the socket
func (c *connection) writePump() {
	defer c.ws.Close()
	for msg := range c.send {
		c.ws.SetWriteDeadline(time.Now().Add(constants.SpectateWriteTimeout))
		if err := c.ws.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			return
		}
	}
	c.ws.SetWriteDeadline(time.Now().Add(constants.SpectateWriteTimeout))
	c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
