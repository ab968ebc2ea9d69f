package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/C9-Tech-GtitHub/SheetFreak/grid"
)

const APP = "sheetfreak"
const VERSION = "v0.3.1"

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
	DRIVE  = "https://www.googleapis.com/auth/drive.metadata.readonly"
)

// Options are the 'global' command line options, parsed before the
// subcommand and handed to every command's Execute.
type Options struct {
	Debug bool
}

// Command is the interface implemented by all sheetfreak subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

// command is the embedded base for the subcommand structs - the options
// common to every command that talks to a spreadsheet.
type command struct {
	workdir     string
	credentials string
	tokens      string
	url         string
	debug       bool
}

func (cmd *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, configuration, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Directory for cached OAuth2 tokens. Defaults to <workdir>/.google")
	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")

	return flagset
}

// configure applies the global options and fills in any options left unset
// on the command line from the (optional) workdir configuration file.
func (cmd *command) configure(options *Options) error {
	cmd.debug = options.Debug

	conf, err := loadConfig(filepath.Join(cmd.workdir, "sheetfreak.yaml"))
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.credentials) == "" {
		cmd.credentials = conf.Credentials
	}

	if strings.TrimSpace(cmd.url) == "" {
		cmd.url = conf.URL
	}

	if strings.TrimSpace(cmd.credentials) == "" {
		cmd.credentials = DEFAULT_CREDENTIALS
	}

	return nil
}

func (cmd *command) validate() error {
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	return nil
}

func (cmd *command) spreadsheetId() (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(strings.TrimSpace(cmd.url))
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func (cmd *command) tokensDir() string {
	if strings.TrimSpace(cmd.tokens) != "" {
		return cmd.tokens
	}

	return filepath.Join(cmd.workdir, ".google")
}

func (cmd *command) newSheets(ctx context.Context, scope string) (*sheets.Service, error) {
	client, err := authorize(cmd.credentials, scope, cmd.tokensDir())
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	return google, nil
}

func (cmd *command) newDrive(ctx context.Context, scope string) (*drive.Service, error) {
	client, err := authorize(cmd.credentials, scope, cmd.tokensDir())
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	return gdrive, nil
}

func getSpreadsheet(google *sheets.Service, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

// sheetIndex builds a grid.SheetLookup over the worksheet list of a
// previously fetched spreadsheet, so that resolving ranges never costs an
// extra API round trip.
func sheetIndex(spreadsheet *sheets.Spreadsheet) grid.SheetLookup {
	index := map[string]int64{}
	for _, sheet := range spreadsheet.Sheets {
		if p := sheet.Properties; p != nil {
			index[normalise(p.Title)] = p.SheetId
		}
	}

	return func(title string) (int64, bool) {
		id, ok := index[normalise(title)]
		return id, ok
	}
}

func normalise(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func helpOptions(flagset *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()
	fmt.Println("    --debug   Displays internal information for diagnosing errors")
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
