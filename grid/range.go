package grid

import (
	"regexp"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"
)

var cells = regexp.MustCompile(`^([A-Z]+)(\d+):([A-Z]+)(\d+)$`)

// SheetLookup resolves a worksheet title to its numeric sheet ID. Callers
// are expected to build it from spreadsheet metadata fetched once per
// invocation rather than from a per-lookup API call.
type SheetLookup func(title string) (int64, bool)

// Range is a zero-based, end-exclusive rectangular cell selection - the
// shape the Sheets API GridRange expects. Sheet is empty for an unqualified
// range, in which case SheetID is 0 (the default sheet).
type Range struct {
	SheetID     int64
	Sheet       string
	StartColumn int64
	EndColumn   int64
	StartRow    int64
	EndRow      int64
}

// ParseRange translates a (possibly sheet-qualified) A1 range such as
// 'Log!A1:H24' into a Range. A quoted sheet title ('My Sheet'!A1:B2) has the
// quotes stripped before the lookup. Only the two-cell form is accepted -
// single cell references and open ended ranges like 'A:A' are invalid.
func ParseRange(area string, lookup SheetLookup) (Range, error) {
	r := Range{}

	ref := area
	if ix := strings.Index(area, "!"); ix != -1 {
		title := strings.TrimSpace(area[:ix])
		if strings.HasPrefix(title, "'") && strings.HasSuffix(title, "'") && len(title) >= 2 {
			title = title[1 : len(title)-1]
		}

		id, ok := lookup(title)
		if !ok {
			return r, &SheetNotFoundError{Sheet: title}
		}

		r.Sheet = title
		r.SheetID = id
		ref = area[ix+1:]
	}

	match := cells.FindStringSubmatch(ref)
	if match == nil {
		return r, &InvalidRangeError{Range: area}
	}

	top, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil {
		return r, &InvalidRangeError{Range: area}
	}

	bottom, err := strconv.ParseInt(match[4], 10, 64)
	if err != nil {
		return r, &InvalidRangeError{Range: area}
	}

	r.StartColumn = columnIndex(match[1])
	r.EndColumn = columnIndex(match[3]) + 1
	r.StartRow = top - 1
	r.EndRow = bottom

	// Row 0 and reversed ranges like 'B2:A1' fail rather than quietly
	// selecting an empty or out-of-bounds grid.
	if r.StartRow < 0 || r.StartColumn >= r.EndColumn || r.StartRow >= r.EndRow {
		return Range{}, &InvalidRangeError{Range: area}
	}

	return r, nil
}

// GridRange converts the range to its Sheets API equivalent. The zero start
// indices are forced onto the wire - omitting them would make the API treat
// the range as unbounded on that axis.
func (r Range) GridRange() *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          r.SheetID,
		StartRowIndex:    r.StartRow,
		EndRowIndex:      r.EndRow,
		StartColumnIndex: r.StartColumn,
		EndColumnIndex:   r.EndColumn,
		ForceSendFields:  []string{"StartRowIndex", "StartColumnIndex"},
	}
}

// ColumnName converts a zero-based column index to column letters
// (0 => 'A', 25 => 'Z', 26 => 'AA').
func ColumnName(index int64) string {
	name := ""
	for index >= 0 {
		name = string(rune('A'+index%26)) + name
		index = index/26 - 1
	}

	return name
}

func columnIndex(letters string) int64 {
	index := int64(0)
	for _, c := range letters {
		index = index*26 + int64(c-'A') + 1
	}

	return index - 1
}
