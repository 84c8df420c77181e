package broker

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/avvvet/pickup-services/internal/boardsvc/service"
	"github.com/avvvet/pickup-services/internal/comm"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	subject string
	msg     comm.WSMessage
}

type fakeConn struct {
	mu       sync.Mutex
	messages []published
	handler  nats.MsgHandler
}

func (c *fakeConn) Publish(subj string, data []byte) error {
	var msg comm.WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, published{subject: subj, msg: msg})
	return nil
}

func (c *fakeConn) Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error) {
	c.handler = cb
	return &nats.Subscription{Subject: subj}, nil
}

func (c *fakeConn) deliver(t *testing.T, msgType, socketId string, data any) {
	t.Helper()
	msg, err := comm.NewMessage(msgType, socketId, data)
	require.NoError(t, err)
	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	c.handler(&nats.Msg{Subject: comm.SocketServiceTopic, Data: raw})
}

func (c *fakeConn) ofType(msgType string) []published {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []published
	for _, p := range c.messages {
		if p.msg.Type == msgType {
			out = append(out, p)
		}
	}
	return out
}

func setup(t *testing.T) (*fakeConn, *service.BoardService) {
	t.Helper()
	conn := &fakeConn{}
	svc := service.NewBoardService()
	svc.SetClock(func() time.Time { return time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC) })

	b := NewBroker(conn, svc)
	svc.SetNotifier(b)

	sub, err := b.SubscribSocketService(comm.SocketServiceTopic)
	require.NoError(t, err)
	require.NotNil(t, sub)
	return conn, svc
}

func boardOf(t *testing.T, p published) comm.BoardData {
	t.Helper()
	var data comm.BoardData
	require.NoError(t, json.Unmarshal(p.msg.Data, &data))
	return data
}

func TestGetBoardRepliesToSocket(t *testing.T) {
	conn, _ := setup(t)

	conn.deliver(t, comm.TypeGetBoard, "sock-1", nil)

	replies := conn.ofType(comm.TypeBoardResponse)
	require.Len(t, replies, 1)
	assert.Equal(t, comm.BoardServiceTopic, replies[0].subject)
	assert.Equal(t, "sock-1", replies[0].msg.SocketId)
	assert.Equal(t, "2026-10-17", boardOf(t, replies[0]).Board.ReferenceDate)
	assert.Empty(t, conn.ofType(comm.TypeBoardUpdated))
}

func TestCommandsMutateAndBroadcast(t *testing.T) {
	conn, svc := setup(t)

	conn.deliver(t, comm.TypeUpdateDraft, "sock-1", comm.DraftData{
		Sport: "soccer", Date: "2026-10-17", Time: "18:00", Location: "Pier 7", PlayerThreshold: "8",
	})
	conn.deliver(t, comm.TypeCreateGame, "sock-1", nil)
	conn.deliver(t, comm.TypeBeginJoin, "sock-2", comm.BeginJoinData{GameId: 1})
	conn.deliver(t, comm.TypeConfirmJoin, "sock-2", comm.ConfirmJoinData{PlayerName: "Bo"})

	v := svc.View()
	require.Len(t, v.Today, 1)
	assert.Equal(t, 8, v.Today[0].PlayerThreshold)
	assert.Equal(t, []string{"Bo"}, v.Today[0].Players)

	updates := conn.ofType(comm.TypeBoardUpdated)
	require.Len(t, updates, 4)
	for _, u := range updates {
		assert.Empty(t, u.msg.SocketId)
	}
	last := boardOf(t, updates[3])
	assert.Equal(t, []string{"Bo"}, last.Board.Today[0].Players)

	assert.Len(t, conn.ofType(comm.TypeBoardResponse), 4)
}

func TestMalformedPayloadRepliesError(t *testing.T) {
	conn, svc := setup(t)

	raw, err := json.Marshal(comm.WSMessage{Type: comm.TypeBeginJoin, Data: json.RawMessage(`{"game_id":"one"}`), SocketId: "sock-9"})
	require.NoError(t, err)
	conn.handler(&nats.Msg{Data: raw})

	errs := conn.ofType(comm.TypeError)
	require.Len(t, errs, 1)
	assert.Equal(t, "sock-9", errs[0].msg.SocketId)
	assert.Nil(t, svc.View().Joining)
}

func TestGarbageAndUnknownMessagesAreDropped(t *testing.T) {
	conn, _ := setup(t)

	conn.handler(&nats.Msg{Data: []byte("not json")})
	conn.deliver(t, "dance", "sock-1", nil)

	assert.Empty(t, conn.messages)
}
