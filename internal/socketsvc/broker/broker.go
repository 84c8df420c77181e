package broker

import (
	"encoding/json"

	"github.com/avvvet/pickup-services/internal/comm"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// Conn is the part of *nats.Conn the broker uses.
type Conn interface {
	Publish(subj string, data []byte) error
	Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error)
}

type Broker struct {
	Conn      Conn
	SendTo    func(string, *comm.WSMessage) bool
	Broadcast func(*comm.WSMessage) int
}

func NewBroker(conn Conn, fncSendTo func(string, *comm.WSMessage) bool, fncBroadcast func(*comm.WSMessage) int) *Broker {
	return &Broker{
		Conn:      conn,
		SendTo:    fncSendTo,
		Broadcast: fncBroadcast,
	}
}

// consume message from board service
func (b *Broker) Subscribe(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, func(m *nats.Msg) {
		b.handleMessages(m.Data)
	})
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// publish message to board service
func (b *Broker) Publish(topic string, payload []byte) error {
	err := b.Conn.Publish(topic, payload)
	if err != nil {
		log.Errorf("Error publishing to topic %s: %s", topic, err)
		return err
	}

	return nil
}

func (b *Broker) PublishJSON(topic string, msg *comm.WSMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return b.Publish(topic, payload)
}

// handleMessages receive message from board service
func (b *Broker) handleMessages(data []byte) {
	message := &comm.WSMessage{}
	if err := json.Unmarshal(data, message); err != nil {
		log.Errorf("Error %s", err)
		return
	}

	switch message.Type {
	case comm.TypeBoardResponse, comm.TypeError:
		if !b.SendTo(message.SocketId, message) {
			log.Debugf("socket %s gone, dropping %s", message.SocketId, message.Type)
		}
	case comm.TypeBoardUpdated:
		if message.SocketId != "" {
			b.SendTo(message.SocketId, message)
			return
		}
		b.Broadcast(message)
	default:
		log.Errorf("Unknown message %s", message.Type)
	}
}
