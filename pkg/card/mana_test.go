package card

import "testing"

func TestCostTotalAndColorCount(t *testing.T) {
	c := Cost{Generic: 2, White: 1, Blue: 1}
	if got := c.Total(); got != 4 {
		t.Fatalf("expected total 4, got %d", got)
	}
	if got := c.ColorCount(White); got != 1 {
		t.Fatalf("expected 1 white pip, got %d", got)
	}
	if got := c.ColorCount(Green); got != 0 {
		t.Fatalf("expected 0 green pips, got %d", got)
	}
}

func TestPoolAddRemoveSnapshotRestore(t *testing.T) {
	p := Pool{}
	p.Add(Red)
	p.Add(Red)
	p.Add(Green)
	if got := p.Total(); got != 3 {
		t.Fatalf("expected total 3, got %d", got)
	}

	snap := p.Snapshot()
	p.Remove(Red)
	if got := p.Count(Red); got != 1 {
		t.Fatalf("expected 1 red remaining, got %d", got)
	}

	p.Restore(snap)
	if got := p.Count(Red); got != 2 {
		t.Fatalf("expected restore to bring back 2 red, got %d", got)
	}
}

func TestPoolRemoveSaturatesAtZero(t *testing.T) {
	p := Pool{}
	p.Remove(Blue)
	if got := p.Count(Blue); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestPoolEmptyReturnsPreEmptySnapshot(t *testing.T) {
	p := Pool{}
	p.Add(White)
	p.Add(Black)
	prev := p.Empty()
	if prev[0] != 1 {
		t.Fatalf("expected pre-empty white count 1, got %d", prev[0])
	}
	if p.Total() != 0 {
		t.Fatalf("expected pool emptied, got total %d", p.Total())
	}
}

func TestBasicLandColor(t *testing.T) {
	cases := map[string]Color{
		"Forest":   Green,
		"Island":   Blue,
		"Mountain": Red,
		"Plains":   White,
		"Swamp":    Black,
		"Wastes":   Colorless,
	}
	for subtype, want := range cases {
		got, ok := BasicLandColor(subtype)
		if !ok || got != want {
			t.Fatalf("BasicLandColor(%q) = (%v, %v), want (%v, true)", subtype, got, ok, want)
		}
	}
	if _, ok := BasicLandColor("Mountainhome"); ok {
		t.Fatalf("expected non-basic subtype to not resolve")
	}
}
