package layout

import "testing"

func TestHeuristicMeasurer_Width(t *testing.T) {
	type tc struct {
		m    HeuristicMeasurer
		text string
		want int
	}

	tests := map[string]tc{
		"empty":               {text: "", want: 0},
		"space":               {text: " ", want: 4},
		"narrow and wide":     {text: "Wi", want: 18},
		"lowercase":           {text: "abc", want: 24},
		"mixed classes":       {text: "fill", want: 6 + 4 + 5 + 5},
		"uppercase":           {text: "AB", want: 20},
		"digits and punct":    {text: "1.", want: 5 + 8},
		"wide east asian":     {text: "世界", want: 32},
		"latin-1 letter":      {text: "\u00e9", want: 8},
		"cyrillic":            {text: "Ж", want: 10},
		"combining cluster":   {text: "e\u0301", want: 8},
		"scaled":              {m: HeuristicMeasurer{Scale: 2}, text: "abc", want: 48},
		"scale one unchanged": {m: HeuristicMeasurer{Scale: 1}, text: "abc", want: 24},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.m.MeasureTextWidth(tt.text, ""); got != tt.want {
				t.Errorf("MeasureTextWidth(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestHeuristicMeasurer_Metrics(t *testing.T) {
	if got := (HeuristicMeasurer{}).FontMetrics("").Height; got != DefaultLineHeight {
		t.Errorf("default Height = %d, want %d", got, DefaultLineHeight)
	}
	if got := (HeuristicMeasurer{LineHeight: 20}).FontMetrics("").Height; got != 20 {
		t.Errorf("Height = %d, want 20", got)
	}
}

func TestMeasurerFuncs_Fallback(t *testing.T) {
	var m MeasurerFuncs
	if got := m.MeasureTextWidth("abc", ""); got != 24 {
		t.Errorf("MeasureTextWidth() = %d, want heuristic 24", got)
	}
	if got := m.FontMetrics("").Height; got != DefaultLineHeight {
		t.Errorf("FontMetrics().Height = %d, want %d", got, DefaultLineHeight)
	}
}
