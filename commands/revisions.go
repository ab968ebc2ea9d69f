package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"
)

var RevisionsCmd = Revisions{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: "",
		tokens:      "",
		url:         "",
		debug:       false,
	},
}

type Revisions struct {
	command
}

type revision struct {
	id       string
	modified time.Time
}

func (cmd *Revisions) Name() string {
	return "revisions"
}

func (cmd *Revisions) Description() string {
	return "Displays the latest revision of a Google Sheets spreadsheet"
}

func (cmd *Revisions) Usage() string {
	return "--credentials <file> --url <url>"
}

func (cmd *Revisions) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] revisions [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Displays the latest revision ID and modification time of the spreadsheet file,")
	fmt.Println("  from the Google Drive revision history")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetfreak revisions --credentials "credentials.json" \`)
	fmt.Println(`                         --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`)
	fmt.Println()
}

func (cmd *Revisions) FlagSet() *flag.FlagSet {
	return cmd.flagset("revisions")
}

func (cmd *Revisions) Execute(args ...any) error {
	options := args[0].(*Options)

	if err := cmd.configure(options); err != nil {
		return err
	}

	// ... check parameters
	if err := cmd.validate(); err != nil {
		return err
	}

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s", spreadsheetId)
	}

	ctx := context.Background()

	gdrive, err := cmd.newDrive(ctx, DRIVE)
	if err != nil {
		return err
	}

	latest, err := getLatestRevision(gdrive, spreadsheetId, ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%-10s %s\n", "revision:", latest.id)
	fmt.Printf("%-10s %s\n", "modified:", latest.modified.Format("2006-01-02 15:04:05"))

	return nil
}

// getLatestRevision pages through the Drive revision history for the file
// and returns the most recently modified revision.
func getLatestRevision(gdrive *drive.Service, fileId string, ctx context.Context) (*revision, error) {
	page := ""
	latest := revision{
		id:       "",
		modified: time.Time{},
	}

	for {
		call := drive.NewRevisionsService(gdrive).List(fileId).Fields("nextPageToken", "revisions(id,modifiedTime)")
		if page != "" {
			call.PageToken(page)
		}

		revisions, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve revisions for file %s (%v)", fileId, err)
		}

		for _, rev := range revisions.Revisions {
			datetime, err := time.Parse("2006-01-02T15:04:05.999Z", rev.ModifiedTime)
			if err != nil {
				return nil, err
			}

			if latest.modified.Before(datetime) {
				latest.id = rev.Id
				latest.modified = datetime
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.modified.IsZero() {
		return nil, fmt.Errorf("unable to identify latest revision for file %s", fileId)
	}

	return &latest, nil
}
