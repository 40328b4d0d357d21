package assemble

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

func TestShiftLabelsCoverFirst(t *testing.T) {
	source := []labelEntry{
		{start: 0, dict: types.Dict{"S": types.Name("r")}},
		{start: 4, dict: types.Dict{"S": types.Name("D"), "St": types.Integer(1)}},
	}

	got := shiftLabels(source, 10, 1, true, "Citation Page")

	if len(got) != 3 {
		t.Fatalf("entry count = %d, want 3", len(got))
	}
	if got[0].start != 0 {
		t.Fatalf("cover label start = %d, want 0", got[0].start)
	}
	if p := got[0].dict["P"]; p != types.StringLiteral("Citation Page") {
		t.Fatalf("cover label = %v", p)
	}
	if got[1].start != 1 || got[2].start != 5 {
		t.Fatalf("source ranges = %d, %d; want shifted by one", got[1].start, got[2].start)
	}
	if got[1].dict["S"] != types.Name("r") {
		t.Fatalf("source label dict not carried over: %v", got[1].dict)
	}
}

func TestShiftLabelsCoverFirstUnlabeledSource(t *testing.T) {
	got := shiftLabels(nil, 10, 1, true, "Citation Page")

	if len(got) != 2 {
		t.Fatalf("entry count = %d, want 2", len(got))
	}
	if got[1].start != 1 {
		t.Fatalf("decimal range start = %d, want 1", got[1].start)
	}
	if got[1].dict["S"] != types.Name("D") {
		t.Fatalf("decimal range dict = %v", got[1].dict)
	}
	if got[1].dict["St"] != types.Integer(1) {
		t.Fatalf("decimal range should restart numbering at 1: %v", got[1].dict)
	}
}

func TestShiftLabelsCoverLast(t *testing.T) {
	source := []labelEntry{
		{start: 0, dict: types.Dict{"S": types.Name("D")}},
	}

	got := shiftLabels(source, 10, 1, false, "Citation Page")

	if len(got) != 2 {
		t.Fatalf("entry count = %d, want 2", len(got))
	}
	if got[0].start != 0 {
		t.Fatalf("source range start = %d, want unshifted 0", got[0].start)
	}
	if got[1].start != 10 {
		t.Fatalf("cover label start = %d, want source page count", got[1].start)
	}
	if p := got[1].dict["P"]; p != types.StringLiteral("Citation Page") {
		t.Fatalf("cover label = %v", p)
	}
}
