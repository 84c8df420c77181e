package board

import "time"

const dateLayout = "2006-01-02"

type Bucket int

const (
	Today Bucket = iota
	Upcoming
	Archived
)

func (b Bucket) String() string {
	switch b {
	case Today:
		return "today"
	case Upcoming:
		return "upcoming"
	default:
		return "archived"
	}
}

// ReferenceDate is the ISO calendar date of t in UTC.
func ReferenceDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// Classify compares the date strings as strings, so malformed or empty dates
// still land in exactly one bucket (empty sorts before any date: archived).
func Classify(date, ref string) Bucket {
	switch {
	case date == ref:
		return Today
	case date > ref:
		return Upcoming
	default:
		return Archived
	}
}

type Partition struct {
	Today    []Game
	Upcoming []Game
	Archived []Game
}

// Split puts every game into exactly one bucket, keeping list order.
func Split(games []Game, ref string) Partition {
	p := Partition{
		Today:    []Game{},
		Upcoming: []Game{},
		Archived: []Game{},
	}
	for _, g := range games {
		switch Classify(g.Date, ref) {
		case Today:
			p.Today = append(p.Today, g)
		case Upcoming:
			p.Upcoming = append(p.Upcoming, g)
		default:
			p.Archived = append(p.Archived, g)
		}
	}
	return p
}
