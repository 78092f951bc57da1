package scene

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Dim is a layout.Dimension read from TOML. It accepts a bare number
// (Fixed), a kind name ("auto", "expand", "grow") or a table such as
// { kind = "grow", min = 30, max = 150 }.
type Dim struct {
	layout.Dimension
}

// UnmarshalTOML implements toml.Unmarshaler.
func (d *Dim) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case string:
		switch strings.ToLower(x) {
		case "auto", "":
			d.Dimension = layout.Auto()
		case "expand":
			d.Dimension = layout.Expand(0)
		case "grow":
			d.Dimension = layout.Grow(0)
		default:
			return fmt.Errorf("unknown dimension %q", x)
		}
		return nil

	case map[string]any:
		return d.fromTable(x)

	default:
		dim, err := layout.DimensionOf(v)
		if err != nil {
			return err
		}
		d.Dimension = dim
		return nil
	}
}

func (d *Dim) fromTable(t map[string]any) error {
	kindName, _ := t["kind"].(string)
	var kind layout.Kind
	switch strings.ToLower(kindName) {
	case "fixed":
		kind = layout.KindFixed
	case "expand":
		kind = layout.KindExpand
	case "grow":
		kind = layout.KindGrow
	case "auto":
		d.Dimension = layout.Auto()
		return nil
	default:
		return fmt.Errorf("unknown dimension kind %q", kindName)
	}

	minimum, err := intField(t, "min")
	if err != nil {
		return err
	}
	if kind == layout.KindFixed {
		if minimum, err = intField(t, "value"); err != nil {
			return err
		}
	}
	maximum, err := intField(t, "max")
	if err != nil {
		return err
	}
	_, hasMax := t["max"]

	dim, err := layout.NewDimension(kind, minimum, maximum, hasMax)
	if err != nil {
		return err
	}
	d.Dimension = dim
	return nil
}

func intField(t map[string]any, key string) (int, error) {
	v, ok := t[key]
	if !ok {
		return 0, nil
	}
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("dimension %s must be a number, got %T", key, v)
	}
}

// AlignSpec holds container alignment factors. It accepts one value for
// both axes or a [primary, cross] pair; each value is a number in [0, 1],
// a bool (false = start, true = end) or one of "start", "center", "end".
type AlignSpec struct {
	Primary layout.Align
	Cross   layout.Align
}

// UnmarshalTOML implements toml.Unmarshaler.
func (a *AlignSpec) UnmarshalTOML(v any) error {
	if list, ok := v.([]any); ok {
		switch len(list) {
		case 1:
			return a.UnmarshalTOML(list[0])
		case 2:
			p, err := alignOf(list[0])
			if err != nil {
				return err
			}
			c, err := alignOf(list[1])
			if err != nil {
				return err
			}
			a.Primary, a.Cross = p, c
			return nil
		default:
			return fmt.Errorf("align takes 1 or 2 values, got %d", len(list))
		}
	}
	f, err := alignOf(v)
	if err != nil {
		return err
	}
	a.Primary, a.Cross = f, f
	return nil
}

func alignOf(v any) (layout.Align, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return layout.AlignEnd, nil
		}
		return layout.AlignStart, nil
	case int64:
		return layout.Align(x), nil
	case float64:
		return layout.Align(x), nil
	case string:
		switch strings.ToLower(x) {
		case "start", "left", "top":
			return layout.AlignStart, nil
		case "center":
			return layout.AlignCenter, nil
		case "end", "right", "bottom":
			return layout.AlignEnd, nil
		}
		return 0, fmt.Errorf("unknown alignment %q", x)
	default:
		return 0, fmt.Errorf("alignment must be a number, bool or name, got %T", v)
	}
}
