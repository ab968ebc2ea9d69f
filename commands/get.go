package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var GetCmd = Get{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: "",
		tokens:      "",
		url:         "",
		debug:       false,
	},

	area:   "",
	file:   time.Now().Format("2006-01-02T150405.tsv"),
	format: "tsv",
}

type Get struct {
	command
	area   string
	file   string
	format string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Downloads a range from a Google Sheets spreadsheet to a local TSV/CSV/JSON file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets range to a TSV, CSV or JSON file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetfreak --debug get --credentials "credentials.json" \`)
	fmt.Println(`                           --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                           --range "Summary!A2:E" \`)
	fmt.Println(`                           --format csv \`)
	fmt.Println(`                           --file "summary.csv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Summary!A2:E'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Output file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")
	flagset.StringVar(&cmd.format, "format", cmd.format, "Output format - one of tsv, csv or json. Defaults to tsv")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
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

	write := writeTSV
	switch strings.ToLower(strings.TrimSpace(cmd.format)) {
	case "tsv":
		write = writeTSV
	case "csv":
		write = writeCSV
	case "json":
		write = writeJSON
	default:
		return fmt.Errorf("invalid format '%s' - expected tsv, csv or json", cmd.format)
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

	response, err := google.Spreadsheets.Values.Get(spreadsheetId, cmd.area).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	if len(response.Values) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	tmp, err := os.CreateTemp(os.TempDir(), APP)
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := write(tmp, response); err != nil {
		return fmt.Errorf("error creating %s file (%v)", cmd.format, err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved %s to file %s", cmd.area, cmd.file)

	return nil
}
