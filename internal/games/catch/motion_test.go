package catch

import "testing"

func TestAdvanceBandBoundaries(t *testing.T) {
	g := testGeometry()

	tests := []struct {
		name       string
		y          float64
		wantCaught bool
		wantMissed bool
	}{
		{"above band", 84.99, false, false},
		{"band top inclusive", 85, true, false},
		{"band middle", 90, true, false},
		{"band bottom inclusive", 95, true, false},
		{"below band", 95.01, false, false},
		{"miss line exclusive", 105, false, false},
		{"past miss line", 105.01, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []Item{{ID: 1, X: 50, Y: tt.y, Category: star, FallSpeed: 20}}
			out := Advance(items, 50, 0, g)

			if got := len(out.Caught) == 1; got != tt.wantCaught {
				t.Errorf("caught = %v, want %v", got, tt.wantCaught)
			}
			if got := len(out.Missed) == 1; got != tt.wantMissed {
				t.Errorf("missed = %v, want %v", got, tt.wantMissed)
			}
			if got := len(out.Survivors) == 1; got != (!tt.wantCaught && !tt.wantMissed) {
				t.Errorf("survived = %v, want %v", got, !tt.wantCaught && !tt.wantMissed)
			}
		})
	}
}

func TestAdvanceMovesByFallSpeed(t *testing.T) {
	items := []Item{{ID: 1, X: 10, Y: 20, Category: star, FallSpeed: 20}}
	out := Advance(items, 90, 0.5, testGeometry())

	if len(out.Survivors) != 1 {
		t.Fatalf("Expected 1 survivor, got %d", len(out.Survivors))
	}
	if out.Survivors[0].Y != 30 {
		t.Errorf("Expected y=30, got %v", out.Survivors[0].Y)
	}
	if out.Survivors[0].X != 10 {
		t.Errorf("X must not change, got %v", out.Survivors[0].X)
	}
	if items[0].Y != 20 {
		t.Errorf("Input slice was modified: y=%v", items[0].Y)
	}
}

func TestAdvanceCatchUsesNewPosition(t *testing.T) {
	// 80 + 10*0.5 = 85 lands exactly on the band top.
	items := []Item{{ID: 1, X: 50, Y: 80, Category: star, FallSpeed: 10}}
	out := Advance(items, 50, 0.5, testGeometry())

	if len(out.Caught) != 1 {
		t.Fatalf("Expected catch at band top, got %+v", out)
	}
	if out.Caught[0].Y != 85 {
		t.Errorf("Caught item should report y=85, got %v", out.Caught[0].Y)
	}
}

func TestAdvanceReach(t *testing.T) {
	g := testGeometry() // reach = 14/2 + 2 = 9

	tests := []struct {
		name string
		dx   float64
		want bool
	}{
		{"centered", 0, true},
		{"inside reach", 8.99, true},
		{"at reach", 9, false},
		{"beyond reach", 12, false},
		{"left side inside", -8.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []Item{{ID: 1, X: 50 + tt.dx, Y: 90, Category: star}}
			out := Advance(items, 50, 0, g)
			if got := len(out.Caught) == 1; got != tt.want {
				t.Errorf("caught = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvanceMissedBadItemIsFree(t *testing.T) {
	items := []Item{
		{ID: 1, X: 10, Y: 110, Category: fire},
		{ID: 2, X: 20, Y: 110, Category: skull},
	}
	out := Advance(items, 90, 0, testGeometry())

	if len(out.Missed) != 2 {
		t.Fatalf("Expected 2 misses, got %d", len(out.Missed))
	}
	if out.LivesLost != 0 {
		t.Errorf("Missing bad items should cost no lives, got %d", out.LivesLost)
	}
	if out.ScoreDelta != 0 {
		t.Errorf("Missing items should not change score, got %d", out.ScoreDelta)
	}
}

func TestAdvanceAggregatesTick(t *testing.T) {
	items := []Item{
		{ID: 1, X: 50, Y: 88, Category: star},
		{ID: 2, X: 52, Y: 92, Category: gem},
		{ID: 3, X: 48, Y: 90, Category: fire},
		{ID: 4, X: 5, Y: 106, Category: star},
		{ID: 5, X: 95, Y: 107, Category: gem},
		{ID: 6, X: 30, Y: 40, Category: skull},
	}
	out := Advance(items, 50, 0, testGeometry())

	if out.ScoreDelta != 25 {
		t.Errorf("Expected score delta 10+25-10=25, got %d", out.ScoreDelta)
	}
	if out.LivesLost != 2 {
		t.Errorf("Expected 2 lives lost, got %d", out.LivesLost)
	}

	seen := make(map[int]int)
	for _, group := range [][]Item{out.Survivors, out.Caught, out.Missed} {
		for _, it := range group {
			seen[it.ID]++
		}
	}
	for _, it := range items {
		if seen[it.ID] != 1 {
			t.Errorf("Item %d resolved %d times, want exactly once", it.ID, seen[it.ID])
		}
	}
}
