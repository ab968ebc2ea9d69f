package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

var ClearCmd = Clear{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: "",
		tokens:      "",
		url:         "",
		debug:       false,
	},

	ranges: "",
}

type Clear struct {
	command
	ranges string
}

func (cmd *Clear) Name() string {
	return "clear"
}

func (cmd *Clear) Description() string {
	return "Clears the values from one or more Google Sheets ranges"
}

func (cmd *Clear) Usage() string {
	return "--credentials <file> --url <url> --ranges <ranges>"
}

func (cmd *Clear) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] clear [options] --url <URL> --ranges <ranges>\n", APP)
	fmt.Println()
	fmt.Println("  Clears the values from the listed ranges. Formatting and borders are not affected")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetfreak clear --credentials "credentials.json" \`)
	fmt.Println(`                     --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                     --ranges "Summary!A2:E,Log!A1:H"`)
	fmt.Println()
}

func (cmd *Clear) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("clear")

	flagset.StringVar(&cmd.ranges, "ranges", cmd.ranges, "Comma-separated list of spreadsheet ranges e.g. 'Summary!A2:E,Log!A1:H'")

	return flagset
}

func (cmd *Clear) Execute(args ...any) error {
	options := args[0].(*Options)

	if err := cmd.configure(options); err != nil {
		return err
	}

	// ... check parameters
	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.ranges) == "" {
		return fmt.Errorf("--ranges is a required option")
	}

	areas := []string{}
	for _, area := range strings.Split(cmd.ranges, ",") {
		if v := strings.TrimSpace(area); v != "" {
			areas = append(areas, v)
		}
	}

	if len(areas) == 0 {
		return fmt.Errorf("--ranges is a required option")
	}

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  ranges:%v", spreadsheetId, areas)
	}

	ctx := context.Background()

	google, err := cmd.newSheets(ctx, SHEETS)
	if err != nil {
		return err
	}

	rq := sheets.BatchClearValuesRequest{
		Ranges: areas,
	}

	if _, err := google.Spreadsheets.Values.BatchClear(spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error clearing ranges (%v)", err)
	}

	infof("Cleared %v", strings.Join(areas, ", "))

	return nil
}
