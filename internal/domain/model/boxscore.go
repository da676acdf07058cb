package model

import "strconv"

// BoxScoreLine holds one player's counting stats for a single game.
// Ephemeral: produced by the game simulator, consumed by the development
// engine, then handed to the recorder.
type BoxScoreLine struct {
	PlayerID string
	Name     string

	Points    int
	Rebounds  int
	Assists   int
	Steals    int
	Blocks    int
	Turnovers int

	InsideMade  int
	InsideAtt   int
	MidMade     int
	MidAtt      int
	ThreeMade   int
	ThreeAtt    int
}

// FieldGoalsMade returns total made shots across all ranges.
func (l *BoxScoreLine) FieldGoalsMade() int {
	return l.InsideMade + l.MidMade + l.ThreeMade
}

// FieldGoalsAttempted returns total attempts across all ranges.
func (l *BoxScoreLine) FieldGoalsAttempted() int {
	return l.InsideAtt + l.MidAtt + l.ThreeAtt
}

// FieldGoalPct returns the shooting percentage in [0,1]. Zero attempts read
// as 0 rather than dividing by zero.
func (l *BoxScoreLine) FieldGoalPct() float64 {
	att := l.FieldGoalsAttempted()
	if att == 0 {
		return 0
	}
	return float64(l.FieldGoalsMade()) / float64(att)
}

// Snapshot returns the flat serialization of the line.
func (l *BoxScoreLine) Snapshot() map[string]string {
	return map[string]string{
		"player_id":  l.PlayerID,
		"name":       l.Name,
		"points":     strconv.Itoa(l.Points),
		"rebounds":   strconv.Itoa(l.Rebounds),
		"assists":    strconv.Itoa(l.Assists),
		"steals":     strconv.Itoa(l.Steals),
		"blocks":     strconv.Itoa(l.Blocks),
		"turnovers":  strconv.Itoa(l.Turnovers),
		"inside_m":   strconv.Itoa(l.InsideMade),
		"inside_a":   strconv.Itoa(l.InsideAtt),
		"mid_m":      strconv.Itoa(l.MidMade),
		"mid_a":      strconv.Itoa(l.MidAtt),
		"three_m":    strconv.Itoa(l.ThreeMade),
		"three_a":    strconv.Itoa(l.ThreeAtt),
	}
}

// BoxScore maps player identity to that player's line for one game.
type BoxScore map[string]*BoxScoreLine

// Line returns the entry for p, creating it on first touch.
func (b BoxScore) Line(p *Player) *BoxScoreLine {
	if l, ok := b[p.ID]; ok {
		return l
	}
	l := &BoxScoreLine{PlayerID: p.ID, Name: p.Name}
	b[p.ID] = l
	return l
}

// TeamPoints sums points for the given players.
func (b BoxScore) TeamPoints(roster []*Player) int {
	total := 0
	for _, p := range roster {
		if l, ok := b[p.ID]; ok {
			total += l.Points
		}
	}
	return total
}

// Score is a final score pair.
type Score struct {
	Home int
	Away int
}

// Fixture names one scheduled matchup. Team resolution against the roster
// set happens at simulation time; an unknown name is a configuration error.
type Fixture struct {
	ID       string
	Matchday int
	Home     string
	Away     string
}

// GameResult bundles everything one simulated game produced.
type GameResult struct {
	Fixture Fixture
	Score   Score
	Box     BoxScore
}
