package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/sheets/v4"
)

var PutCmd = Put{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: "",
		tokens:      "",
		url:         "",
		debug:       false,
	},

	area:   "",
	file:   "",
	format: "tsv",
}

type Put struct {
	command
	area   string
	file   string
	format string
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Uploads a TSV/CSV file to a Google Sheets range"
}

func (cmd *Put) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] put [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Uploads a TSV or CSV file to a Google Sheets range - the first row of the file")
	fmt.Println("  is written to the first row of the range, the remainder below it")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetfreak --debug put --credentials "credentials.json" \`)
	fmt.Println(`                           --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                           --range "Summary!A2:E" \`)
	fmt.Println(`                           --file "summary.tsv"`)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("put")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Summary!A2:E'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV/CSV file to upload")
	flagset.StringVar(&cmd.format, "format", cmd.format, "Input format - tsv or csv. Defaults to tsv")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
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

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	comma := '\t'
	switch strings.ToLower(strings.TrimSpace(cmd.format)) {
	case "tsv":
		comma = '\t'
	case "csv":
		comma = ','
	default:
		return fmt.Errorf("invalid format '%s' - expected tsv or csv", cmd.format)
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

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	header, data, err := readTable(f, cmd.area, comma)
	if err != nil {
		return err
	}

	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             []*sheets.ValueRange{header, data},
	}

	if _, err := google.Spreadsheets.Values.BatchUpdate(spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	infof("Uploaded %s file %v to %v", cmd.format, cmd.file, cmd.area)

	return nil
}
