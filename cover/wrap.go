package cover

import "strings"

// WrapText splits text into lines no wider than width, measured by the
// supplied function. Words are packed greedily; a single word wider
// than the line width is emitted on its own line rather than split, so
// the loop always consumes input and terminates.
func WrapText(text string, width float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var cur string
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		if measure(cur+" "+w) <= width {
			cur += " " + w
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	lines = append(lines, cur)
	return lines
}
