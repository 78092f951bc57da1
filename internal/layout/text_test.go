package layout

import (
	"slices"
	"strings"
	"testing"
)

func TestText_TryShrinkWidth(t *testing.T) {
	type tc struct {
		text   string
		target int
		want   int
	}

	tests := map[string]tc{
		"zero target returns longest token": {text: "hello world", target: 0, want: 40},
		"wraps to widest line":              {text: "hello world", target: 50, want: 40},
		"fits unwrapped":                    {text: "hello world", target: 100, want: 88},
		"packs whole candidate lines":       {text: "one two three", target: 60, want: 56},
		"unbroken word exceeds target":      {text: strings.Repeat("a", 40), target: 50, want: 320},
		"blank text":                        {text: "   ", target: 10, want: 0},
		"empty text":                        {text: "", target: 10, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			txt := NewText(tt.text, "")
			if got := txt.TryShrinkWidth(newTestPass(), tt.target); got != tt.want {
				t.Errorf("TryShrinkWidth(%d) = %d, want %d", tt.target, got, tt.want)
			}
		})
	}
}

func TestText_FloorIsLongestToken(t *testing.T) {
	texts := []string{
		"a bb ccc dddd",
		"supercalifragilistic is long",
		"x",
		"two\nlines here",
	}
	for _, s := range texts {
		p := newTestPass()
		txt := NewText(s, "")
		want := 0
		for _, tok := range strings.Fields(s) {
			want = max(want, 8*len(tok))
		}
		if got := txt.TryShrinkWidth(p, 0); got != want {
			t.Errorf("TryShrinkWidth(0) for %q = %d, want %d", s, got, want)
		}
		if got := txt.QueryAxis(p, Horizontal); got != want {
			t.Errorf("QueryAxis(Horizontal) for %q = %d, want %d", s, got, want)
		}
	}
}

func TestText_TryShrinkIsPure(t *testing.T) {
	p := newTestPass()
	txt := NewText("hello world", "")
	txt.TryShrinkWidth(p, 0)

	if lines := txt.Lines(p); len(lines) != 1 {
		t.Errorf("Lines() after TryShrinkWidth = %q, want a single line", lines)
	}
	if got := txt.QueryAxis(p, Vertical); got != 16 {
		t.Errorf("QueryAxis(Vertical) = %d, want 16", got)
	}
}

func TestText_Distribute(t *testing.T) {
	type tc struct {
		text      string
		available int
		width     int
		height    int
		lines     []string
	}

	tests := map[string]tc{
		"room to spare": {
			text:      "hello world",
			available: 500,
			width:     88,
			height:    16,
			lines:     []string{"hello world"},
		},
		"wrapped": {
			text:      "hello world",
			available: 50,
			width:     40,
			height:    32,
			lines:     []string{"hello", "world"},
		},
		"below floor": {
			text:      "hello world",
			available: 10,
			width:     40,
			height:    32,
			lines:     []string{"hello", "world"},
		},
		"explicit newline unwrapped": {
			text:      "ab\ncdef",
			available: 500,
			width:     32,
			height:    32,
			lines:     []string{"ab", "cdef"},
		},
		"blank paragraph kept": {
			text:      "ab\n\ncd ef",
			available: 30,
			width:     16,
			height:    64,
			lines:     []string{"ab", "", "cd", "ef"},
		},
		"empty": {
			text: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := newTestPass()
			txt := NewText(tt.text, "")
			if got := txt.DistributeAxis(p, Horizontal, tt.available); got != tt.width {
				t.Errorf("DistributeAxis(Horizontal, %d) = %d, want %d", tt.available, got, tt.width)
			}
			if got := txt.DistributeAxis(p, Vertical, 0); got != tt.height {
				t.Errorf("DistributeAxis(Vertical) = %d, want %d", got, tt.height)
			}
			if got := txt.Lines(p); !slices.Equal(got, tt.lines) {
				t.Errorf("Lines() = %q, want %q", got, tt.lines)
			}
		})
	}
}

func TestText_RewrapRestoresState(t *testing.T) {
	p := newTestPass()
	txt := NewText("the quick brown fox", "")

	txt.DistributeAxis(p, Horizontal, 60)
	if got := txt.DistributeAxis(p, Vertical, 0); got <= 16 {
		t.Fatalf("narrow height = %d, want more than one line", got)
	}

	txt.DistributeAxis(p, Horizontal, 1000)
	if got := txt.DistributeAxis(p, Vertical, 0); got != 16 {
		t.Errorf("height after widening = %d, want 16", got)
	}
}

func TestText_SetTextResetsWrap(t *testing.T) {
	p := newTestPass()
	txt := NewText("aa bb", "")
	txt.DistributeAxis(p, Horizontal, 20)

	txt.SetText("cc dd ee")
	if got := txt.Lines(p); !slices.Equal(got, []string{"cc dd ee"}) {
		t.Errorf("Lines() = %q, want unwrapped", got)
	}
}

func TestText_PreferredWidth(t *testing.T) {
	p := newTestPass()
	if w, ok := NewText("hello world", "").PreferredWidth(p); !ok || w != 88 {
		t.Errorf("PreferredWidth() = (%d, %t), want (88, true)", w, ok)
	}
	if _, ok := NewText("", "").PreferredWidth(p); ok {
		t.Error("PreferredWidth() ok for empty text")
	}
}

func TestLink_TitleDefaultsToURL(t *testing.T) {
	l := NewLink("https://example.com", "", "")
	if l.Text.Text() != "https://example.com" {
		t.Errorf("title = %q, want the URL", l.Text.Text())
	}
	if l.URL() != "https://example.com" {
		t.Errorf("URL() = %q", l.URL())
	}

	titled := NewLink("https://example.com", "site", "")
	if got := titled.QueryAxis(newTestPass(), Horizontal); got != 32 {
		t.Errorf("QueryAxis(Horizontal) = %d, want 32", got)
	}
}
