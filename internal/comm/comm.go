package comm

import (
	"encoding/json"

	"github.com/avvvet/pickup-services/internal/board"
)

// NATS subjects
const (
	SocketServiceTopic = "socket.service" // socket clients -> board service
	BoardServiceTopic  = "board.service"  // board service -> socket clients
)

// board message types
const (
	TypeGetBoard      = "get-board"
	TypeUpdateDraft   = "update-draft"
	TypeCreateGame    = "create-game"
	TypeBeginJoin     = "begin-join"
	TypeConfirmJoin   = "confirm-join"
	TypeBoardResponse = "board-response"
	TypeBoardUpdated  = "board-updated"
	TypeError         = "error"
)

type WSMessage struct {
	Type     string          `json:"type"` // e.g. "get-board", "create-game"
	Data     json.RawMessage `json:"data"`
	SocketId string          `json:"socketid"` // empty means every socket
}

// DraftData carries form values as typed by the user.
type DraftData struct {
	Sport           string `json:"sport"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	PlayerThreshold string `json:"playerThreshold"`
}

type BeginJoinData struct {
	GameId int `json:"game_id"`
}

type ConfirmJoinData struct {
	PlayerName string `json:"playerName"`
}

type ErrorData struct {
	Error string `json:"error"`
}

type BoardData struct {
	Board board.View `json:"board"`
}

// NewMessage marshals data into a WSMessage envelope.
func NewMessage(msgType, socketId string, data any) (*WSMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &WSMessage{Type: msgType, Data: raw, SocketId: socketId}, nil
}

// Draft converts form values into a board draft.
func (d DraftData) Draft() board.Draft {
	return board.Draft{
		Sport:           d.Sport,
		Date:            d.Date,
		Time:            d.Time,
		Location:        d.Location,
		PlayerThreshold: board.ParseThreshold(d.PlayerThreshold),
	}
}
