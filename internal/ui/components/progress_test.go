package components

import (
	"strings"
	"testing"
)

func TestAccuracyBar_Percent(t *testing.T) {
	tests := []struct {
		correct, attempted, want int
	}{
		{0, 0, 0},
		{4, 5, 80},
		{2, 3, 66},
		{7, 5, 100},
	}
	for _, tt := range tests {
		bar := NewAccuracyBar("", tt.correct, tt.attempted, 80, 40)
		if got := bar.Percent(); got != tt.want {
			t.Errorf("Percent(%d/%d) = %d, want %d", tt.correct, tt.attempted, got, tt.want)
		}
	}
}

func TestAccuracyBar_View(t *testing.T) {
	view := NewAccuracyBar("Accuracy", 4, 5, 80, 50).View()
	for _, want := range []string{"Accuracy", "4/5", "80%", "│"} {
		if !strings.Contains(view, want) {
			t.Errorf("view %q lacks %q", view, want)
		}
	}

	if strings.Contains(NewAccuracyBar("", 1, 2, 0, 30).View(), "│") {
		t.Error("zero threshold should hide the tick")
	}
}
