package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/C9-Tech-GtitHub/SheetFreak/grid"
)

var FormatCmd = Format{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: "",
		tokens:      "",
		url:         "",
		debug:       false,
	},
}

type Format struct {
	command
	area string
	file string

	bg            string
	fg            string
	bold          bool
	italic        bool
	underline     bool
	strikethrough bool
	fontSize      int64
	fontFamily    string
	align         string
	valign        string
	wrap          string
	numberFormat  string
	numberPattern string

	flags *flag.FlagSet
}

func (cmd *Format) Name() string {
	return "format"
}

func (cmd *Format) Description() string {
	return "Applies cell formatting to a Google Sheets range"
}

func (cmd *Format) Usage() string {
	return "--credentials <file> --url <url> --range <range> [options]"
}

func (cmd *Format) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] format [options] --url <URL> --range <range>\n", APP)
	fmt.Println()
	fmt.Println("  Applies cell formatting to a range. Only the properties given on the command line")
	fmt.Println("  (or present in the --json document) are updated - everything else is left untouched")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetfreak format --credentials "credentials.json" \`)
	fmt.Println(`                      --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                      --range "Summary!A1:E1" \`)
	fmt.Println(`                      --bold --bg "#4285f4" --fg white --align CENTER`)
	fmt.Println()
	fmt.Println(`    sheetfreak format --url "..." --range "'My Sheet'!B2:D10" --json format.json`)
	fmt.Println()
}

func (cmd *Format) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("format")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Summary!A1:E1'")
	flagset.StringVar(&cmd.file, "json", cmd.file, "JSON file with a cell format document (overrides the individual format flags)")
	flagset.StringVar(&cmd.bg, "bg", cmd.bg, "Background color - hex value or named color")
	flagset.StringVar(&cmd.fg, "fg", cmd.fg, "Text color - hex value or named color")
	flagset.BoolVar(&cmd.bold, "bold", cmd.bold, "Bold text")
	flagset.BoolVar(&cmd.italic, "italic", cmd.italic, "Italic text")
	flagset.BoolVar(&cmd.underline, "underline", cmd.underline, "Underlined text")
	flagset.BoolVar(&cmd.strikethrough, "strikethrough", cmd.strikethrough, "Strikethrough text")
	flagset.Int64Var(&cmd.fontSize, "font-size", cmd.fontSize, "Font size in points")
	flagset.StringVar(&cmd.fontFamily, "font-family", cmd.fontFamily, "Font family e.g. 'Roboto'")
	flagset.StringVar(&cmd.align, "align", cmd.align, "Horizontal alignment - LEFT, CENTER or RIGHT")
	flagset.StringVar(&cmd.valign, "valign", cmd.valign, "Vertical alignment - TOP, MIDDLE or BOTTOM")
	flagset.StringVar(&cmd.wrap, "wrap", cmd.wrap, "Wrap strategy - OVERFLOW_CELL, LEGACY_WRAP, CLIP or WRAP")
	flagset.StringVar(&cmd.numberFormat, "number-format", cmd.numberFormat, "Number format type e.g. NUMBER, PERCENT, CURRENCY, DATE")
	flagset.StringVar(&cmd.numberPattern, "number-pattern", cmd.numberPattern, "Number format pattern e.g. '#,##0.00'")

	cmd.flags = flagset

	return flagset
}

func (cmd *Format) Execute(args ...any) error {
	options := args[0].(*Options)

	if err := cmd.configure(options); err != nil {
		return err
	}

	// ... check parameters
	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	format, err := cmd.spec()
	if err != nil {
		return err
	}

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  range:%s  fields:%v", spreadsheetId, cmd.area, format.Fields())
	}

	ctx := context.Background()

	google, err := cmd.newSheets(ctx, SHEETS)
	if err != nil {
		return err
	}

	spreadsheet, err := getSpreadsheet(google, spreadsheetId)
	if err != nil {
		return err
	}

	r, err := grid.ParseRange(cmd.area, sheetIndex(spreadsheet))
	if err != nil {
		return err
	}

	request, err := format.Request(r)
	if err != nil {
		return err
	}

	if len(format.Fields()) == 0 {
		warnf("No format properties given - nothing to update")
		return nil
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{request},
	}

	if _, err := google.Spreadsheets.BatchUpdate(spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error updating cell format (%v)", err)
	}

	infof("Formatted %s (%v)", cmd.area, strings.Join(format.Fields(), ","))

	return nil
}

// spec assembles the cell format from the parsed flags - or from the --json
// document when one is given. Presence is taken from the flags the user
// actually set, so '--bold=false' updates the field while leaving it off the
// command line does not.
func (cmd *Format) spec() (*grid.CellFormat, error) {
	if strings.TrimSpace(cmd.file) != "" {
		b, err := os.ReadFile(cmd.file)
		if err != nil {
			return nil, err
		}

		format := grid.CellFormat{}
		if err := json.Unmarshal(b, &format); err != nil {
			return nil, fmt.Errorf("invalid format document %s (%v)", cmd.file, err)
		}

		return &format, nil
	}

	format := grid.CellFormat{}
	text := grid.TextFormat{}
	styled := false

	cmd.flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bg":
			format.BackgroundColor = &cmd.bg
		case "fg":
			text.ForegroundColor = &cmd.fg
			styled = true
		case "bold":
			text.Bold = &cmd.bold
			styled = true
		case "italic":
			text.Italic = &cmd.italic
			styled = true
		case "underline":
			text.Underline = &cmd.underline
			styled = true
		case "strikethrough":
			text.Strikethrough = &cmd.strikethrough
			styled = true
		case "font-size":
			text.FontSize = &cmd.fontSize
			styled = true
		case "font-family":
			text.FontFamily = &cmd.fontFamily
			styled = true
		case "align":
			format.HorizontalAlignment = &cmd.align
		case "valign":
			format.VerticalAlignment = &cmd.valign
		case "wrap":
			format.WrapStrategy = &cmd.wrap
		case "number-format":
			format.NumberFormat = &grid.NumberFormat{Type: cmd.numberFormat, Pattern: cmd.numberPattern}
		}
	})

	if styled {
		format.Text = &text
	}

	return &format, nil
}
