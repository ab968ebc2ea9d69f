package grid

import (
	"fmt"
)

// InvalidRangeError is returned for a range string that does not match the
// '<sheet>!<cell>:<cell>' grammar. The offending input is retained for the
// caller's error message.
type InvalidRangeError struct {
	Range string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range '%s' - expected something like 'Sheet1!A1:B2'", e.Range)
}

// SheetNotFoundError is returned when a sheet-qualified range names a
// worksheet that is not in the spreadsheet.
type SheetNotFoundError struct {
	Sheet string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("no worksheet matching '%s' in spreadsheet", e.Sheet)
}

// InvalidColorError is returned for a color token that is neither a 6-digit
// hex value nor one of the named colors.
type InvalidColorError struct {
	Color string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color '%s' - expected a hex value e.g. '#4285f4' or one of %v", e.Color, colorNames())
}
