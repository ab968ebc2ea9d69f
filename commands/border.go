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

var BorderCmd = Border{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: "",
		tokens:      "",
		url:         "",
		debug:       false,
	},
}

type Border struct {
	command
	area string
	file string

	top    string
	bottom string
	left   string
	right  string
	color  string
}

func (cmd *Border) Name() string {
	return "border"
}

func (cmd *Border) Description() string {
	return "Applies borders to a Google Sheets range"
}

func (cmd *Border) Usage() string {
	return "--credentials <file> --url <url> --range <range> [options]"
}

func (cmd *Border) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] border [options] --url <URL> --range <range>\n", APP)
	fmt.Println()
	fmt.Println("  Applies borders to the edges of a range. Only the edges given on the command line")
	fmt.Println("  (or present in the --json document) are updated - existing borders on the other")
	fmt.Println("  edges are left untouched. Borders can be added or restyled but not removed")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetfreak border --credentials "credentials.json" \`)
	fmt.Println(`                      --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                      --range "Summary!A1:E10" \`)
	fmt.Println(`                      --top SOLID_THICK --bottom SOLID_THICK --color "#333333"`)
	fmt.Println()
	fmt.Println(`    sheetfreak border --url "..." --range "Summary!A1:E10" --json borders.json`)
	fmt.Println()
}

func (cmd *Border) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("border")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Summary!A1:E10'")
	flagset.StringVar(&cmd.file, "json", cmd.file, "JSON file with a borders document (overrides the individual edge flags)")
	flagset.StringVar(&cmd.top, "top", cmd.top, "Top border style - DOTTED, DASHED, SOLID, SOLID_MEDIUM, SOLID_THICK or DOUBLE")
	flagset.StringVar(&cmd.bottom, "bottom", cmd.bottom, "Bottom border style")
	flagset.StringVar(&cmd.left, "left", cmd.left, "Left border style")
	flagset.StringVar(&cmd.right, "right", cmd.right, "Right border style")
	flagset.StringVar(&cmd.color, "color", cmd.color, "Border color for the given edges - hex value or named color. Defaults to black")

	return flagset
}

func (cmd *Border) Execute(args ...any) error {
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

	borders, err := cmd.spec()
	if err != nil {
		return err
	}

	if borders.Top == nil && borders.Bottom == nil && borders.Left == nil && borders.Right == nil {
		return fmt.Errorf("no border edges given - expected at least one of --top, --bottom, --left or --right")
	}

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  range:%s", spreadsheetId, cmd.area)
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

	request, err := borders.Request(r)
	if err != nil {
		return err
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{request},
	}

	if _, err := google.Spreadsheets.BatchUpdate(spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error updating borders (%v)", err)
	}

	infof("Applied borders to %s", cmd.area)

	return nil
}

// spec assembles the borders from the parsed flags - or from the --json
// document when one is given. --color applies to every edge named on the
// command line; edges without a color default to black.
func (cmd *Border) spec() (*grid.Borders, error) {
	if strings.TrimSpace(cmd.file) != "" {
		b, err := os.ReadFile(cmd.file)
		if err != nil {
			return nil, err
		}

		borders := grid.Borders{}
		if err := json.Unmarshal(b, &borders); err != nil {
			return nil, fmt.Errorf("invalid borders document %s (%v)", cmd.file, err)
		}

		return &borders, nil
	}

	var color *string
	if strings.TrimSpace(cmd.color) != "" {
		color = &cmd.color
	}

	edge := func(style string) *grid.BorderEdge {
		if strings.TrimSpace(style) == "" {
			return nil
		}

		return &grid.BorderEdge{Style: style, Color: color}
	}

	return &grid.Borders{
		Top:    edge(cmd.top),
		Bottom: edge(cmd.bottom),
		Left:   edge(cmd.left),
		Right:  edge(cmd.right),
	}, nil
}
