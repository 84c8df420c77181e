package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ref = "2026-10-17"

func TestClassify(t *testing.T) {
	tests := []struct {
		date string
		want Bucket
	}{
		{"2026-10-17", Today},
		{"2026-10-18", Upcoming},
		{"2027-01-01", Upcoming},
		{"2026-10-16", Archived},
		{"", Archived},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.date, ref), tt.date)
	}
}

func TestSplitIsDisjointCover(t *testing.T) {
	dates := []string{"2026-10-17", "2026-10-18", "2026-10-16", "", "2026-10-17", "2030-05-05", "garbage"}
	s := New()
	for _, d := range dates {
		s = Create(SetDraft(s, Draft{Sport: "soccer", Date: d}))
	}

	p := Split(s.Games, ref)

	seen := map[int]int{}
	for _, bucket := range [][]Game{p.Today, p.Upcoming, p.Archived} {
		for _, g := range bucket {
			seen[g.ID]++
		}
	}
	require.Len(t, seen, len(s.Games))
	for id, n := range seen {
		assert.Equal(t, 1, n, "game %d in %d buckets", id, n)
	}

	assert.Len(t, p.Today, 2)
	// "garbage" sorts after any digit
	assert.Len(t, p.Upcoming, 3)
	assert.Len(t, p.Archived, 2)
}

func TestSplitKeepsOrder(t *testing.T) {
	games := []Game{
		{ID: 1, Date: "2026-11-01"},
		{ID: 2, Date: "2026-10-01"},
		{ID: 3, Date: "2026-10-20"},
	}

	p := Split(games, ref)

	require.Len(t, p.Upcoming, 2)
	assert.Equal(t, 1, p.Upcoming[0].ID)
	assert.Equal(t, 3, p.Upcoming[1].ID)
	assert.Equal(t, 2, p.Archived[0].ID)
	assert.NotNil(t, p.Today)
	assert.Empty(t, p.Today)
}

func TestReferenceDateUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	late := time.Date(2026, 10, 16, 20, 0, 0, 0, loc)

	assert.Equal(t, "2026-10-17", ReferenceDate(late))
}

func TestRender(t *testing.T) {
	s := New()
	s = Create(SetDraft(s, Draft{Sport: "soccer", Date: "2026-10-17", Time: "18:00", Location: "Pier 7", PlayerThreshold: 10}))
	s = Create(SetDraft(s, Draft{Sport: "volleyball", Date: "2026-10-01", Location: "Beach", PlayerThreshold: 4}))
	s = BeginJoin(s, 1)

	v := Render(s, ref)

	assert.Equal(t, ref, v.ReferenceDate)
	require.Len(t, v.Today, 1)
	assert.Equal(t, "soccer at Pier 7 on 2026-10-17 at 18:00", v.Today[0].Summary)
	assert.Equal(t, "0 / 10 players", v.Today[0].Roster)
	assert.True(t, v.Today[0].Joinable)
	assert.Empty(t, v.Upcoming)
	require.Len(t, v.Archived, 1)
	assert.False(t, v.Archived[0].Joinable)
	require.NotNil(t, v.Joining)
	assert.Equal(t, 1, *v.Joining)
	assert.Equal(t, NewDraft(), v.Draft)
}

func TestBucketString(t *testing.T) {
	assert.Equal(t, "today", Today.String())
	assert.Equal(t, "upcoming", Upcoming.String())
	assert.Equal(t, "archived", Archived.String())
}
