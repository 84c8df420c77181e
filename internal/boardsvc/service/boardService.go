package service

import (
	"sync"
	"time"

	"github.com/avvvet/pickup-services/internal/board"
)

// Notifier is told about every board change.
type Notifier interface {
	BoardUpdated(view board.View)
}

// BoardService hosts a single in-memory board. Transitions are applied one
// at a time; the board is gone when the process exits.
type BoardService struct {
	mtx      sync.Mutex
	state    board.State
	now      func() time.Time
	notifier Notifier
}

func NewBoardService() *BoardService {
	return &BoardService{
		state: board.New(),
		now:   time.Now,
	}
}

// SetClock replaces the clock used for partitioning.
func (s *BoardService) SetClock(now func() time.Time) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.now = now
}

func (s *BoardService) SetNotifier(n Notifier) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.notifier = n
}

func (s *BoardService) View() board.View {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.render()
}

func (s *BoardService) UpdateDraft(d board.Draft) board.View {
	return s.apply(func(st board.State) board.State {
		return board.SetDraft(st, d)
	})
}

func (s *BoardService) CreateGame() board.View {
	return s.apply(board.Create)
}

func (s *BoardService) BeginJoin(gameID int) board.View {
	return s.apply(func(st board.State) board.State {
		return board.BeginJoin(st, gameID)
	})
}

func (s *BoardService) ConfirmJoin(playerName string) board.View {
	return s.apply(func(st board.State) board.State {
		return board.ConfirmJoin(st, playerName)
	})
}

func (s *BoardService) apply(transition func(board.State) board.State) board.View {
	s.mtx.Lock()
	s.state = transition(s.state)
	view := s.render()
	notifier := s.notifier
	s.mtx.Unlock()

	if notifier != nil {
		notifier.BoardUpdated(view)
	}
	return view
}

func (s *BoardService) render() board.View {
	return board.Render(s.state, board.ReferenceDate(s.now()))
}
