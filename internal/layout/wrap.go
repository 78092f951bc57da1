package layout

import "strings"

// paragraphs splits text on explicit newlines.
func paragraphs(text string) []string {
	return strings.Split(text, "\n")
}

// longestToken returns the width of the widest whitespace-delimited token.
// No reflow can produce a line narrower than this.
func longestToken(p *Pass, text string, font Font) int {
	floor := 0
	for _, tok := range strings.Fields(text) {
		floor = max(floor, p.TextWidth(tok, font))
	}
	return floor
}

// extents returns the unwrapped width (widest explicit line) and the number
// of explicit lines.
func extents(p *Pass, text string, font Font) (width, lines int) {
	if text == "" {
		return 0, 0
	}
	paras := paragraphs(text)
	for _, para := range paras {
		width = max(width, p.TextWidth(para, font))
	}
	return width, len(paras)
}

// wrapLines greedily packs tokens into lines no wider than target. Each
// candidate line is measured as a whole string rather than as a sum of
// token widths so kerning and proportional spacing are respected. A token
// wider than target occupies a line of its own. Explicit newlines always
// start a new line; a blank paragraph yields one empty line.
func wrapLines(p *Pass, text string, font Font, target int) []string {
	var lines []string
	for _, para := range paragraphs(text) {
		tokens := strings.Fields(para)
		if len(tokens) == 0 {
			lines = append(lines, "")
			continue
		}

		current := tokens[0]
		for _, tok := range tokens[1:] {
			candidate := current + " " + tok
			if p.TextWidth(candidate, font) <= target {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = tok
		}
		lines = append(lines, current)
	}
	return lines
}

// widestLine returns the width of the widest line.
func widestLine(p *Pass, lines []string, font Font) int {
	w := 0
	for _, line := range lines {
		w = max(w, p.TextWidth(line, font))
	}
	return w
}
