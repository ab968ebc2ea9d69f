package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: "",
		tokens:      "",
		url:         "",
		debug:       false,
	},

	drive: false,
}

type Authorise struct {
	command
	drive bool
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises sheetfreak to access a Google Sheets spreadsheet"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Runs the OAuth2 flow for the Google Sheets API (and optionally the Drive metadata API)")
	fmt.Println("  and caches the retrieved tokens for use by the other commands")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetfreak authorise --credentials "credentials.json"`)
	fmt.Println(`    sheetfreak authorise --credentials "credentials.json" --drive`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("authorise")

	flagset.BoolVar(&cmd.drive, "drive", cmd.drive, "Also authorises read-only access to the Drive metadata API (revision history)")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	if err := cmd.configure(options); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if _, err := os.Stat(cmd.credentials); err != nil {
		return fmt.Errorf("cannot read credentials file (%v)", err)
	}

	scopes := []string{SHEETS}
	if cmd.drive {
		scopes = append(scopes, DRIVE)
	}

	for _, scope := range scopes {
		b, err := os.ReadFile(cmd.credentials)
		if err != nil {
			return err
		}

		config, err := google.ConfigFromJSON(b, scope)
		if err != nil {
			return fmt.Errorf("invalid credentials file (%v)", err)
		}

		token, err := tokenFromWeb(config)
		if err != nil {
			return fmt.Errorf("authorisation error (%v)", err)
		}

		cache := tokenCache(cmd.credentials, scope, cmd.tokensDir())
		if err := saveToken(cache, token); err != nil {
			return fmt.Errorf("unable to cache OAuth2 token (%v)", err)
		}

		infof("Stored OAuth2 token in %s", cache)
	}

	return nil
}
