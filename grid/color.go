package grid

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"
)

var hex = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

var named = map[string]sheets.Color{
	"red":       {Red: 1.0, Green: 0.0, Blue: 0.0, Alpha: 1.0},
	"green":     {Red: 0.0, Green: 1.0, Blue: 0.0, Alpha: 1.0},
	"blue":      {Red: 0.0, Green: 0.0, Blue: 1.0, Alpha: 1.0},
	"yellow":    {Red: 1.0, Green: 1.0, Blue: 0.0, Alpha: 1.0},
	"orange":    {Red: 1.0, Green: 0.65, Blue: 0.0, Alpha: 1.0},
	"purple":    {Red: 0.5, Green: 0.0, Blue: 0.5, Alpha: 1.0},
	"pink":      {Red: 1.0, Green: 0.75, Blue: 0.8, Alpha: 1.0},
	"white":     {Red: 1.0, Green: 1.0, Blue: 1.0, Alpha: 1.0},
	"black":     {Red: 0.0, Green: 0.0, Blue: 0.0, Alpha: 1.0},
	"gray":      {Red: 0.5, Green: 0.5, Blue: 0.5, Alpha: 1.0},
	"lightgray": {Red: 0.83, Green: 0.83, Blue: 0.83, Alpha: 1.0},
	"darkgray":  {Red: 0.66, Green: 0.66, Blue: 0.66, Alpha: 1.0},
}

// ParseColor maps a color token to a Sheets API color. The token is either
// a 6 digit hex value with an optional leading '#' or one of the named
// colors (case-insensitive). Alpha is always 1.0.
func ParseColor(token string) (*sheets.Color, error) {
	if hex.MatchString(token) {
		v := strings.TrimPrefix(token, "#")

		r, _ := strconv.ParseUint(v[0:2], 16, 8)
		g, _ := strconv.ParseUint(v[2:4], 16, 8)
		b, _ := strconv.ParseUint(v[4:6], 16, 8)

		return &sheets.Color{
			Red:   float64(r) / 255.0,
			Green: float64(g) / 255.0,
			Blue:  float64(b) / 255.0,
			Alpha: 1.0,
		}, nil
	}

	if c, ok := named[strings.ToLower(token)]; ok {
		color := c
		return &color, nil
	}

	return nil, &InvalidColorError{Color: token}
}

func colorNames() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
