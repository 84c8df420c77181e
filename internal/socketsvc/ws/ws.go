package ws

import (
	"errors"
	"sync"

	"github.com/avvvet/pickup-services/internal/comm"
	"github.com/avvvet/pickup-services/internal/socketsvc/broker"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var errNoBroker = errors.New("broker not set")

// client serializes writes; gorilla connections allow one writer at a time.
type client struct {
	conn *websocket.Conn
	mtx  sync.Mutex
}

func (c *client) writeJSON(v interface{}) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.conn.WriteJSON(v)
}

type Ws struct {
	connMap sync.Map // to keep track of socket connection with socketId
	Broker  *broker.Broker
}

func NewWs() *Ws {
	return &Ws{}
}

// handle socket message from web clients
func (s *Ws) SocketMessage(socketId string, message *comm.WSMessage) error {
	switch message.Type {
	case comm.TypeGetBoard, comm.TypeUpdateDraft, comm.TypeCreateGame,
		comm.TypeBeginJoin, comm.TypeConfirmJoin:
		return s.forward(socketId, message)
	default:
		log.Warnf("unknown event received: %s", message.Type)
		return s.SendError(socketId, "unknown event "+message.Type)
	}
}

// forward stamps the socket id and relays the command to the board service.
func (s *Ws) forward(socketId string, msg *comm.WSMessage) error {
	if s.Broker == nil {
		return errNoBroker
	}

	msg.SocketId = socketId
	if err := s.Broker.PublishJSON(comm.SocketServiceTopic, msg); err != nil {
		log.Errorf("Failed to publish %s for socket %s: %v", msg.Type, socketId, err)
		return err
	}

	log.Debugf("Published %s message for socket %s", msg.Type, socketId)
	return nil
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, &client{conn: conn})
}

func (s *Ws) GetConnection(socketId string) (*websocket.Conn, bool) {
	c, ok := s.connMap.Load(socketId)
	if !ok {
		return nil, false
	}
	return c.(*client).conn, true
}

func (s *Ws) HandleDisconnect(socketId string) {
	s.connMap.Delete(socketId)
}

func (s *Ws) Count() int {
	count := 0
	s.connMap.Range(func(key, value any) bool {
		count++
		return true
	})
	return count
}

// Send writes m to one socket and reports whether the socket was known.
func (s *Ws) Send(socketId string, m *comm.WSMessage) bool {
	c, ok := s.connMap.Load(socketId)
	if !ok {
		return false
	}
	if err := c.(*client).writeJSON(m); err != nil {
		log.Errorf("Failed to write to socket %s: %v", socketId, err)
	}
	return true
}

// Broadcast writes m to every socket.
func (s *Ws) Broadcast(m *comm.WSMessage) int {
	sent := 0
	s.connMap.Range(func(key, value any) bool {
		if err := value.(*client).writeJSON(m); err != nil {
			log.Errorf("Failed to write to socket %s: %v", key, err)
			return true
		}
		sent++
		return true
	})
	return sent
}

// SendError reports a problem back to the socket that caused it.
func (s *Ws) SendError(socketId, errorMsg string) error {
	msg, err := comm.NewMessage(comm.TypeError, socketId, comm.ErrorData{Error: errorMsg})
	if err != nil {
		return err
	}
	s.Send(socketId, msg)
	return nil
}
