package grid

import (
	"errors"
	"reflect"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestParseColorWithHexValue(t *testing.T) {
	expected := sheets.Color{
		Red:   float64(0x42) / 255.0,
		Green: float64(0x85) / 255.0,
		Blue:  float64(0xf4) / 255.0,
		Alpha: 1.0,
	}

	for _, token := range []string{"#4285f4", "4285f4", "#4285F4"} {
		color, err := ParseColor(token)
		if err != nil {
			t.Fatalf("%s: unexpected error returned from ParseColor (%v)", token, err)
		}

		if !reflect.DeepEqual(*color, expected) {
			t.Errorf("%s: incorrect color\n   expected: %+v\n   got:      %+v\n", token, expected, *color)
		}
	}
}

func TestParseColorWithNamedColor(t *testing.T) {
	expected := sheets.Color{Red: 1.0, Green: 0.65, Blue: 0.0, Alpha: 1.0}

	for _, token := range []string{"orange", "ORANGE", "Orange"} {
		color, err := ParseColor(token)
		if err != nil {
			t.Fatalf("%s: unexpected error returned from ParseColor (%v)", token, err)
		}

		if !reflect.DeepEqual(*color, expected) {
			t.Errorf("%s: incorrect color\n   expected: %+v\n   got:      %+v\n", token, expected, *color)
		}
	}
}

func TestParseColorTable(t *testing.T) {
	names := []string{"red", "green", "blue", "yellow", "orange", "purple", "pink", "white", "black", "gray", "lightgray", "darkgray"}

	for _, name := range names {
		color, err := ParseColor(name)
		if err != nil {
			t.Fatalf("%s: unexpected error returned from ParseColor (%v)", name, err)
		}

		if color.Alpha != 1.0 {
			t.Errorf("%s: expected alpha 1.0, got %v", name, color.Alpha)
		}
	}
}

func TestParseColorWithInvalidToken(t *testing.T) {
	for _, token := range []string{"notacolor", "#12345", "#1234567", "#12345g", ""} {
		_, err := ParseColor(token)
		if err == nil {
			t.Fatalf("%s: expected error return for invalid color, got %v", token, err)
		}

		var invalid *InvalidColorError
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: expected InvalidColorError, got %T (%v)", token, err, err)
		}

		if invalid.Color != token {
			t.Errorf("Incorrect color token in error\n   expected: %v\n   got:      %v\n", token, invalid.Color)
		}
	}
}
