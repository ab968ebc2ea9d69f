package grid

import (
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// TextFormat is the optional text styling subset of a cell format. Pointer
// fields distinguish 'not set' from 'set to the zero value' - the generated
// field mask depends on presence, not value.
type TextFormat struct {
	Bold            *bool   `json:"bold,omitempty"`
	Italic          *bool   `json:"italic,omitempty"`
	Underline       *bool   `json:"underline,omitempty"`
	Strikethrough   *bool   `json:"strikethrough,omitempty"`
	FontSize        *int64  `json:"fontSize,omitempty"`
	FontFamily      *string `json:"fontFamily,omitempty"`
	ForegroundColor *string `json:"foregroundColor,omitempty"`
}

// NumberFormat is a Sheets number format - a type (NUMBER, PERCENT, DATE,
// etc.) and an optional pattern string.
type NumberFormat struct {
	Type    string `json:"type"`
	Pattern string `json:"pattern,omitempty"`
}

// CellFormat is an all-optional bundle of cell formatting properties,
// constructed from CLI flags or unmarshalled from a JSON document. Only the
// fields actually set are included in the update request and its field mask.
type CellFormat struct {
	BackgroundColor     *string       `json:"backgroundColor,omitempty"`
	Text                *TextFormat   `json:"textFormat,omitempty"`
	HorizontalAlignment *string       `json:"horizontalAlignment,omitempty"`
	VerticalAlignment   *string       `json:"verticalAlignment,omitempty"`
	WrapStrategy        *string       `json:"wrapStrategy,omitempty"`
	NumberFormat        *NumberFormat `json:"numberFormat,omitempty"`
}

// Fields returns the field mask entries for the set fields, relative to
// 'userEnteredFormat', in a fixed evaluation order so that the emitted
// request is reproducible.
func (f *CellFormat) Fields() []string {
	fields := []string{}

	if f.BackgroundColor != nil {
		fields = append(fields, "backgroundColor")
	}

	if f.Text != nil {
		if f.Text.Bold != nil {
			fields = append(fields, "textFormat.bold")
		}

		if f.Text.Italic != nil {
			fields = append(fields, "textFormat.italic")
		}

		if f.Text.Underline != nil {
			fields = append(fields, "textFormat.underline")
		}

		if f.Text.Strikethrough != nil {
			fields = append(fields, "textFormat.strikethrough")
		}

		if f.Text.FontSize != nil {
			fields = append(fields, "textFormat.fontSize")
		}

		if f.Text.FontFamily != nil {
			fields = append(fields, "textFormat.fontFamily")
		}

		if f.Text.ForegroundColor != nil {
			fields = append(fields, "textFormat.foregroundColor")
		}
	}

	if f.HorizontalAlignment != nil {
		fields = append(fields, "horizontalAlignment")
	}

	if f.VerticalAlignment != nil {
		fields = append(fields, "verticalAlignment")
	}

	if f.WrapStrategy != nil {
		fields = append(fields, "wrapStrategy")
	}

	if f.NumberFormat != nil {
		fields = append(fields, "numberFormat")
	}

	return fields
}

// Request translates the cell format into a RepeatCell batch update request
// for the range. An empty format still produces a valid (no-op) request -
// callers may skip issuing it but the builder does not refuse.
func (f *CellFormat) Request(r Range) (*sheets.Request, error) {
	format := sheets.CellFormat{}

	if f.BackgroundColor != nil {
		color, err := ParseColor(*f.BackgroundColor)
		if err != nil {
			return nil, err
		}

		format.BackgroundColor = color
	}

	if f.Text != nil {
		text, err := f.Text.build()
		if err != nil {
			return nil, err
		}

		format.TextFormat = text
	}

	if f.HorizontalAlignment != nil {
		v := strings.ToUpper(strings.TrimSpace(*f.HorizontalAlignment))
		switch v {
		case "LEFT", "CENTER", "RIGHT":
			format.HorizontalAlignment = v
		default:
			return nil, fmt.Errorf("invalid horizontal alignment '%s' - expected LEFT, CENTER or RIGHT", *f.HorizontalAlignment)
		}
	}

	if f.VerticalAlignment != nil {
		v := strings.ToUpper(strings.TrimSpace(*f.VerticalAlignment))
		switch v {
		case "TOP", "MIDDLE", "BOTTOM":
			format.VerticalAlignment = v
		default:
			return nil, fmt.Errorf("invalid vertical alignment '%s' - expected TOP, MIDDLE or BOTTOM", *f.VerticalAlignment)
		}
	}

	if f.WrapStrategy != nil {
		v := strings.ToUpper(strings.TrimSpace(*f.WrapStrategy))
		switch v {
		case "OVERFLOW_CELL", "LEGACY_WRAP", "CLIP", "WRAP":
			format.WrapStrategy = v
		default:
			return nil, fmt.Errorf("invalid wrap strategy '%s' - expected OVERFLOW_CELL, LEGACY_WRAP, CLIP or WRAP", *f.WrapStrategy)
		}
	}

	if f.NumberFormat != nil {
		format.NumberFormat = &sheets.NumberFormat{
			Type:    strings.ToUpper(strings.TrimSpace(f.NumberFormat.Type)),
			Pattern: f.NumberFormat.Pattern,
		}
	}

	mask := make([]string, len(f.Fields()))
	for i, field := range f.Fields() {
		mask[i] = "userEnteredFormat." + field
	}

	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: r.GridRange(),
			Cell: &sheets.CellData{
				UserEnteredFormat: &format,
			},
			Fields: strings.Join(mask, ","),
		},
	}, nil
}

func (t *TextFormat) build() (*sheets.TextFormat, error) {
	text := sheets.TextFormat{}

	// Explicitly set 'false' values still have to go over the wire - the
	// field mask names them, so they cannot be dropped by omitempty.
	force := []string{}

	if t.Bold != nil {
		text.Bold = *t.Bold
		force = append(force, "Bold")
	}

	if t.Italic != nil {
		text.Italic = *t.Italic
		force = append(force, "Italic")
	}

	if t.Underline != nil {
		text.Underline = *t.Underline
		force = append(force, "Underline")
	}

	if t.Strikethrough != nil {
		text.Strikethrough = *t.Strikethrough
		force = append(force, "Strikethrough")
	}

	if t.FontSize != nil {
		text.FontSize = *t.FontSize
		force = append(force, "FontSize")
	}

	if t.FontFamily != nil {
		text.FontFamily = *t.FontFamily
		force = append(force, "FontFamily")
	}

	if t.ForegroundColor != nil {
		color, err := ParseColor(*t.ForegroundColor)
		if err != nil {
			return nil, err
		}

		text.ForegroundColor = color
	}

	text.ForceSendFields = force

	return &text, nil
}
