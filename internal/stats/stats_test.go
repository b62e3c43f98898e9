package stats

import "testing"

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
	if got := Mean([]float64{2, 4, 6}); got != 4 {
		t.Errorf("Mean = %v, want 4", got)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.24, 1.2},
		{1.25, 1.3},
		{1.26, 1.3},
		{0, 0},
		{-2.35, -2.4},
		{100, 100},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPct(t *testing.T) {
	if got := Pct(1, 0); got != 0 {
		t.Errorf("Pct with zero total = %v, want 0", got)
	}
	if got := Pct(1, 3); got != 33.3 {
		t.Errorf("Pct(1,3) = %v, want 33.3", got)
	}
	if got := Pct(10, 10); got != 100 {
		t.Errorf("Pct(10,10) = %v, want 100", got)
	}
	if got := Pct(0, 5); got != 0 {
		t.Errorf("Pct(0,5) = %v, want 0", got)
	}
}
