package teams

import (
	"math"
	"testing"
)

func TestSimpleMovement(t *testing.T) {
	m := NewSimpleMovement()
	if got := m.MoveDays("K1", "K1"); got != 1 {
		t.Errorf("same cluster = %v, want 1", got)
	}
	if got := m.MoveDays("K1", "K2"); got != 14 {
		t.Errorf("other cluster = %v, want 14", got)
	}
	// An unplaced team still pays the relocation.
	if got := m.MoveDays("", "K1"); got != 14 {
		t.Errorf("from nowhere = %v, want 14", got)
	}
}

func TestDistanceMovement(t *testing.T) {
	coords := map[string]Coordinate{
		"K1": {X: 0, Y: 0},
		// 1080 km away: 1080000/(15*1000)/24 = 3 travel days on top of the
		// 90-day minimum.
		"K2": {X: 1_080_000, Y: 0},
	}
	m := NewDistanceMovement(coords)

	if got := m.MoveDays("K1", "K1"); got != 1 {
		t.Errorf("same cluster = %v, want 1", got)
	}
	if got := m.MoveDays("K1", "K2"); math.Abs(got-93) > 1e-9 {
		t.Errorf("hop = %v, want 93", got)
	}

	// An unplaced team pays only the minimum.
	if got := m.MoveDays("", "K2"); got != 90 {
		t.Errorf("from nowhere = %v, want 90", got)
	}
	// Unknown clusters fall back to the minimum too.
	if got := m.MoveDays("K1", "nowhere"); got != 90 {
		t.Errorf("unknown cluster = %v, want 90", got)
	}
}
