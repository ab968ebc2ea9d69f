package grid

import (
	"encoding/json"
	"reflect"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestBordersRequestWithDefaultColor(t *testing.T) {
	borders := Borders{
		Top: &BorderEdge{Style: "SOLID"},
	}

	rq, err := borders.Request(Range{SheetID: 2, StartColumn: 0, EndColumn: 2, StartRow: 0, EndRow: 2})
	if err != nil {
		t.Fatalf("Unexpected error returned from Request (%v)", err)
	}

	if rq.UpdateBorders == nil {
		t.Fatalf("Expected UpdateBorders request, got %+v", rq)
	}

	expected := sheets.Border{
		Style: "SOLID",
		Color: &sheets.Color{Red: 0.0, Green: 0.0, Blue: 0.0, Alpha: 1.0},
	}

	if !reflect.DeepEqual(*rq.UpdateBorders.Top, expected) {
		t.Errorf("Incorrect top border\n   expected: %+v\n   got:      %+v\n", expected, *rq.UpdateBorders.Top)
	}

	if rq.UpdateBorders.Bottom != nil || rq.UpdateBorders.Left != nil || rq.UpdateBorders.Right != nil {
		t.Errorf("Expected unset edges to be omitted, got %+v", rq.UpdateBorders)
	}
}

func TestBordersRequestWithAllEdges(t *testing.T) {
	borders := Borders{
		Top:    &BorderEdge{Style: "SOLID_THICK", Color: strp("red")},
		Bottom: &BorderEdge{Style: "DOUBLE"},
		Left:   &BorderEdge{Style: "dotted"},
		Right:  &BorderEdge{Style: "DASHED", Color: strp("#00ff00")},
	}

	rq, err := borders.Request(Range{StartColumn: 0, EndColumn: 1, StartRow: 0, EndRow: 1})
	if err != nil {
		t.Fatalf("Unexpected error returned from Request (%v)", err)
	}

	if rq.UpdateBorders.Top.Style != "SOLID_THICK" || rq.UpdateBorders.Top.Color.Red != 1.0 {
		t.Errorf("Incorrect top border %+v", rq.UpdateBorders.Top)
	}

	if rq.UpdateBorders.Left.Style != "DOTTED" {
		t.Errorf("Expected lowercase style to be normalised, got %v", rq.UpdateBorders.Left.Style)
	}

	if rq.UpdateBorders.Right.Color.Green != 1.0 {
		t.Errorf("Incorrect right border color %+v", rq.UpdateBorders.Right.Color)
	}
}

func TestBordersRequestWithInvalidStyle(t *testing.T) {
	borders := Borders{
		Top: &BorderEdge{Style: "WAVY"},
	}

	if _, err := borders.Request(Range{StartColumn: 0, EndColumn: 1, StartRow: 0, EndRow: 1}); err == nil {
		t.Fatalf("Expected error return for invalid border style, got %v", err)
	}
}

func TestBordersRequestWithInvalidColor(t *testing.T) {
	borders := Borders{
		Bottom: &BorderEdge{Style: "SOLID", Color: strp("notacolor")},
	}

	if _, err := borders.Request(Range{StartColumn: 0, EndColumn: 1, StartRow: 0, EndRow: 1}); err == nil {
		t.Fatalf("Expected error return for invalid border color, got %v", err)
	}
}

func TestBordersFromJSON(t *testing.T) {
	document := `{
	  "top":    { "style": "SOLID_MEDIUM", "color": "blue" },
	  "bottom": { "style": "SOLID" }
	}`

	borders := Borders{}
	if err := json.Unmarshal([]byte(document), &borders); err != nil {
		t.Fatalf("Unexpected error unmarshalling borders document (%v)", err)
	}

	rq, err := borders.Request(Range{StartColumn: 0, EndColumn: 1, StartRow: 0, EndRow: 1})
	if err != nil {
		t.Fatalf("Unexpected error returned from Request (%v)", err)
	}

	if rq.UpdateBorders.Top.Color.Blue != 1.0 {
		t.Errorf("Incorrect top border color %+v", rq.UpdateBorders.Top.Color)
	}

	if rq.UpdateBorders.Left != nil || rq.UpdateBorders.Right != nil {
		t.Errorf("Expected unset edges to be omitted, got %+v", rq.UpdateBorders)
	}
}
