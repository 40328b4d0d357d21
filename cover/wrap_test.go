package cover

import (
	"strings"
	"testing"
)

// runeWidth measures one unit per rune, making widths easy to reason
// about in tests.
func runeWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func TestWrapTextGreedyPacking(t *testing.T) {
	lines := WrapText("alpha beta gamma delta", 11, runeWidth)
	want := []string{"alpha beta", "gamma delta"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapTextSingleLine(t *testing.T) {
	lines := WrapText("short", 100, runeWidth)
	if len(lines) != 1 || lines[0] != "short" {
		t.Fatalf("lines = %v, want [short]", lines)
	}
}

func TestWrapTextOversizedWordTerminates(t *testing.T) {
	long := strings.Repeat("x", 50)
	lines := WrapText("tiny "+long+" tail", 10, runeWidth)

	want := []string{"tiny", long, "tail"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	if lines[1] != long {
		t.Fatalf("oversized word should sit alone on its line, got %q", lines[1])
	}
}

func TestWrapTextEmpty(t *testing.T) {
	if lines := WrapText("   ", 10, runeWidth); lines != nil {
		t.Fatalf("lines = %v, want nil", lines)
	}
}
