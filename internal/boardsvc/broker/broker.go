package broker

import (
	"encoding/json"

	"github.com/avvvet/pickup-services/internal/board"
	"github.com/avvvet/pickup-services/internal/boardsvc/service"
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
	Conn         Conn
	BoardService *service.BoardService
}

func NewBroker(nc Conn, boardService *service.BoardService) *Broker {
	return &Broker{
		Conn:         nc,
		BoardService: boardService,
	}
}

// SubscribSocketService consumes board commands relayed by the socket service.
func (b *Broker) SubscribSocketService(topic string) (*nats.Subscription, error) {
	return b.Conn.Subscribe(topic, func(m *nats.Msg) {
		b.handleMessage(m.Data)
	})
}

// BoardUpdated broadcasts a board change to every socket.
func (b *Broker) BoardUpdated(view board.View) {
	b.publish(comm.TypeBoardUpdated, "", comm.BoardData{Board: view})
}

// handles message coming from socket
func (b *Broker) handleMessage(data []byte) {
	msg := &comm.WSMessage{}
	if err := json.Unmarshal(data, msg); err != nil {
		log.Errorf("Error nats message %s", err)
		return
	}

	switch msg.Type {
	case comm.TypeGetBoard:
		b.reply(msg.SocketId, b.BoardService.View())
	case comm.TypeUpdateDraft:
		var request comm.DraftData
		if err := json.Unmarshal(msg.Data, &request); err != nil {
			b.replyError(msg.SocketId, msg.Type, err)
			return
		}
		b.reply(msg.SocketId, b.BoardService.UpdateDraft(request.Draft()))
	case comm.TypeCreateGame:
		b.reply(msg.SocketId, b.BoardService.CreateGame())
	case comm.TypeBeginJoin:
		var request comm.BeginJoinData
		if err := json.Unmarshal(msg.Data, &request); err != nil {
			b.replyError(msg.SocketId, msg.Type, err)
			return
		}
		b.reply(msg.SocketId, b.BoardService.BeginJoin(request.GameId))
	case comm.TypeConfirmJoin:
		var request comm.ConfirmJoinData
		if err := json.Unmarshal(msg.Data, &request); err != nil {
			b.replyError(msg.SocketId, msg.Type, err)
			return
		}
		b.reply(msg.SocketId, b.BoardService.ConfirmJoin(request.PlayerName))
	default:
		log.Warnf("unknown message type received: %s", msg.Type)
	}
}

func (b *Broker) reply(socketId string, view board.View) {
	if socketId == "" {
		return
	}
	b.publish(comm.TypeBoardResponse, socketId, comm.BoardData{Board: view})
}

func (b *Broker) replyError(socketId, msgType string, err error) {
	log.Errorf("Error decoding %s payload: %s", msgType, err)
	if socketId == "" {
		return
	}
	b.publish(comm.TypeError, socketId, comm.ErrorData{Error: "invalid " + msgType + " payload"})
}

func (b *Broker) publish(msgType, socketId string, data any) {
	msg, err := comm.NewMessage(msgType, socketId, data)
	if err != nil {
		log.Errorf("error [publish] marshaling %s data: %v", msgType, err)
		return
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("error [publish] marshaling WSMessage: %v", err)
		return
	}

	if err := b.Conn.Publish(comm.BoardServiceTopic, payload); err != nil {
		log.Errorf("error publishing %s to %s: %v", msgType, comm.BoardServiceTopic, err)
	}
}
