package flex_test

import (
	"errors"
	"fmt"
	"testing"
	"unicode/utf8"

	flex "github.com/grindlemire/go-flex"
)

var mono = flex.MeasurerFuncs{
	Width: func(text string, _ flex.Font) int {
		return 8 * utf8.RuneCountInString(text)
	},
	Metrics: func(flex.Font) flex.FontMetrics {
		return flex.FontMetrics{Height: 16}
	},
}

func TestLayout_ThroughPublicAPI(t *testing.T) {
	type tc struct {
		width     int
		wantLeft  flex.Rect
		wantRight flex.Rect
	}

	tests := map[string]tc{
		"spacer absorbs the slack": {
			width:     400,
			wantLeft:  flex.NewRect(0, 0, 75, 25),
			wantRight: flex.NewRect(325, 0, 75, 25),
		},
		"no slack": {
			width:     160,
			wantLeft:  flex.NewRect(0, 0, 75, 25),
			wantRight: flex.NewRect(85, 0, 75, 25),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			left := flex.NewButton("OK", 1, flex.Fixed(75), flex.Auto())
			right := flex.NewButton("Cancel", 2, flex.Fixed(75), flex.Auto())
			root := flex.NewWindow(flex.NewHorizontal(
				flex.WithGap(10),
				flex.WithGapDimension(flex.Fixed(10)),
				flex.WithChildren(left, flex.NewSpacer(flex.Expand(0), flex.Auto()), right),
			))

			flex.NewEngine(flex.WithMeasurer(mono)).Layout(root, 0, 0, tt.width, 100)

			if got := left.Bounds(); got != tt.wantLeft {
				t.Errorf("left = %+v, want %+v", got, tt.wantLeft)
			}
			if got := right.Bounds(); got != tt.wantRight {
				t.Errorf("right = %+v, want %+v", got, tt.wantRight)
			}
		})
	}
}

func TestDimensionErrors(t *testing.T) {
	_, err := flex.NewDimension(flex.KindGrow, 10, 5, true)
	if !errors.Is(err, flex.ErrInvalidDimension) {
		t.Fatalf("NewDimension() error = %v, want ErrInvalidDimension", err)
	}
	var ce *flex.ConstructionError
	if !errors.As(err, &ce) {
		t.Fatalf("NewDimension() error = %T, want *ConstructionError", err)
	}
	if ce.Field != "maximum" {
		t.Errorf("Field = %q, want %q", ce.Field, "maximum")
	}
}

func ExampleEngine_Layout() {
	root := flex.NewWindow(flex.NewHorizontal(
		flex.WithGap(10),
		flex.WithChildren(
			flex.NewButton("OK", 1, flex.Fixed(75), flex.Auto()),
			flex.NewSpacer(flex.Expand(0), flex.Auto()),
			flex.NewButton("Cancel", 2, flex.Fixed(75), flex.Auto()),
		),
	))

	show := flex.RealizerFunc(func(n flex.Node, r flex.Rect) {
		if b, ok := n.(*flex.Button); ok {
			fmt.Printf("%s %d,%d %dx%d\n", b.Label(), r.X, r.Y, r.Width, r.Height)
		}
	})
	flex.NewEngine(flex.WithMeasurer(mono), flex.WithRealizer(show)).Layout(root, 0, 0, 400, 100)

	// Output:
	// OK 0,0 75x25
	// Cancel 325,0 75x25
}
