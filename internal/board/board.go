// Package board holds the pickup game board: a list of games, the new-game
// draft and the join currently in progress. Every transition takes a State
// and returns a new one; the input is never modified.
package board

import (
	"fmt"
	"strconv"
)

const DefaultSport = "frisbee"

// Game is a scheduled pickup game. Players are kept in join order.
type Game struct {
	ID              int      `json:"id"`
	Sport           string   `json:"sport"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Location        string   `json:"location"`
	PlayerThreshold int      `json:"playerThreshold"`
	Players         []string `json:"players"`
}

// Draft is the new-game form before it is submitted.
type Draft struct {
	Sport           string `json:"sport"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	PlayerThreshold int    `json:"playerThreshold"`
}

func NewDraft() Draft {
	return Draft{Sport: DefaultSport}
}

type State struct {
	Games []Game
	Draft Draft

	// Joining is the id of the game in the join flow, nil when none.
	Joining *int

	nextID int
}

func New() State {
	return State{
		Games:  []Game{},
		Draft:  NewDraft(),
		nextID: 1,
	}
}

// Summary is the one-line listing of a game.
func (g Game) Summary() string {
	return fmt.Sprintf("%s at %s on %s at %s", g.Sport, g.Location, g.Date, g.Time)
}

func (g Game) Roster() string {
	return fmt.Sprintf("%d / %d players", len(g.Players), g.PlayerThreshold)
}

// ParseThreshold converts a capacity form value. Anything that is not an
// integer becomes 0.
func ParseThreshold(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func SetDraft(s State, d Draft) State {
	next := s.clone()
	next.Draft = d
	return next
}

// Create appends a game built from the draft and resets the draft. Nothing
// is validated: empty fields and non-positive capacities are accepted.
func Create(s State) State {
	next := s.clone()
	if next.nextID < 1 {
		next.nextID = len(next.Games) + 1
	}

	next.Games = append(next.Games, Game{
		ID:              next.nextID,
		Sport:           s.Draft.Sport,
		Date:            s.Draft.Date,
		Time:            s.Draft.Time,
		Location:        s.Draft.Location,
		PlayerThreshold: s.Draft.PlayerThreshold,
		Players:         []string{},
	})
	next.nextID++
	next.Draft = NewDraft()
	return next
}

// BeginJoin starts the join flow for gameID, replacing any join in progress.
func BeginJoin(s State, gameID int) State {
	next := s.clone()
	id := gameID
	next.Joining = &id
	return next
}

// ConfirmJoin appends name to the game being joined and ends the join flow.
// Capacity is not checked. Without a join in progress it is a no-op.
func ConfirmJoin(s State, name string) State {
	if s.Joining == nil {
		return s.clone()
	}

	next := s.clone()
	for i := range next.Games {
		if next.Games[i].ID == *s.Joining {
			next.Games[i].Players = append(next.Games[i].Players, name)
		}
	}
	next.Joining = nil
	return next
}

// Find returns the game with id.
func Find(s State, id int) (Game, bool) {
	for _, g := range s.Games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

func (s State) clone() State {
	next := State{
		Games:  make([]Game, len(s.Games)),
		Draft:  s.Draft,
		nextID: s.nextID,
	}
	for i, g := range s.Games {
		g.Players = append(make([]string, 0, len(g.Players)), g.Players...)
		next.Games[i] = g
	}
	if s.Joining != nil {
		id := *s.Joining
		next.Joining = &id
	}
	return next
}
