package board

// GameView is a game as listed on the board.
type GameView struct {
	Game
	Summary  string `json:"summary"`
	Roster   string `json:"roster"`
	Joinable bool   `json:"joinable"`
}

type View struct {
	ReferenceDate string     `json:"referenceDate"`
	Today         []GameView `json:"today"`
	Upcoming      []GameView `json:"upcoming"`
	Archived      []GameView `json:"archived"`
	Draft         Draft      `json:"draft"`
	Joining       *int       `json:"joining"`
}

// Render projects s against the reference date. Archived games cannot be
// joined from the board.
func Render(s State, ref string) View {
	snapshot := s.clone()
	p := Split(snapshot.Games, ref)

	return View{
		ReferenceDate: ref,
		Today:         listing(p.Today, true),
		Upcoming:      listing(p.Upcoming, true),
		Archived:      listing(p.Archived, false),
		Draft:         snapshot.Draft,
		Joining:       snapshot.Joining,
	}
}

func listing(games []Game, joinable bool) []GameView {
	out := make([]GameView, 0, len(games))
	for _, g := range games {
		out = append(out, GameView{
			Game:     g,
			Summary:  g.Summary(),
			Roster:   g.Roster(),
			Joinable: joinable,
		})
	}
	return out
}
