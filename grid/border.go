package grid

import (
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// BorderEdge describes the border for a single edge of a range - a line
// style plus an optional color token. A missing color defaults to opaque
// black.
type BorderEdge struct {
	Style string  `json:"style"`
	Color *string `json:"color,omitempty"`
}

// Borders holds up to four independently optional edges. Absent edges are
// omitted from the generated request entirely, which leaves any existing
// border on that edge untouched - the builder can add or restyle borders
// but never remove them.
type Borders struct {
	Top    *BorderEdge `json:"top,omitempty"`
	Bottom *BorderEdge `json:"bottom,omitempty"`
	Left   *BorderEdge `json:"left,omitempty"`
	Right  *BorderEdge `json:"right,omitempty"`
}

// Request translates the border spec into an UpdateBorders batch update
// request for the range.
func (b *Borders) Request(r Range) (*sheets.Request, error) {
	rq := sheets.UpdateBordersRequest{
		Range: r.GridRange(),
	}

	edges := []struct {
		edge *BorderEdge
		set  func(*sheets.Border)
	}{
		{b.Top, func(border *sheets.Border) { rq.Top = border }},
		{b.Bottom, func(border *sheets.Border) { rq.Bottom = border }},
		{b.Left, func(border *sheets.Border) { rq.Left = border }},
		{b.Right, func(border *sheets.Border) { rq.Right = border }},
	}

	for _, e := range edges {
		if e.edge == nil {
			continue
		}

		border, err := e.edge.build()
		if err != nil {
			return nil, err
		}

		e.set(border)
	}

	return &sheets.Request{
		UpdateBorders: &rq,
	}, nil
}

func (e *BorderEdge) build() (*sheets.Border, error) {
	style := strings.ToUpper(strings.TrimSpace(e.Style))
	switch style {
	case "DOTTED", "DASHED", "SOLID", "SOLID_MEDIUM", "SOLID_THICK", "DOUBLE":
	default:
		return nil, fmt.Errorf("invalid border style '%s' - expected DOTTED, DASHED, SOLID, SOLID_MEDIUM, SOLID_THICK or DOUBLE", e.Style)
	}

	color := &sheets.Color{Red: 0.0, Green: 0.0, Blue: 0.0, Alpha: 1.0}
	if e.Color != nil {
		c, err := ParseColor(*e.Color)
		if err != nil {
			return nil, err
		}

		color = c
	}

	return &sheets.Border{
		Style: style,
		Color: color,
	}, nil
}
