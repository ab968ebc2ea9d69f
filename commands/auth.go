package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// authorize wraps the OAuth2 dance for a credentials file and scope,
// returning an HTTP client that attaches the access token to every request.
// Tokens are cached per credentials file and scope in the tokens directory -
// the interactive flow only runs when there is no cached token.
func authorize(credentials, scope, tokens string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, err
	}

	cache := tokenCache(credentials, scope, tokens)

	token, err := tokenFromFile(cache)
	if err != nil {
		if token, err = tokenFromWeb(config); err != nil {
			return nil, err
		}

		if err := saveToken(cache, token); err != nil {
			warnf("unable to cache OAuth2 token (%v)", err)
		}
	}

	return config.Client(context.Background(), token), nil
}

// tokenCache maps a credentials file and scope to the file path for the
// cached token, e.g. credentials.json + the Sheets scope caches to
// <tokens>/credentials.sheets.
func tokenCache(credentials, scope, tokens string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	switch {
	case strings.HasPrefix(scope, "https://www.googleapis.com/auth/spreadsheets"):
		return filepath.Join(tokens, fmt.Sprintf("%s.sheets", name))

	case strings.HasPrefix(scope, "https://www.googleapis.com/auth/drive"):
		return filepath.Join(tokens, fmt.Sprintf("%s.drive", name))

	default:
		return filepath.Join(tokens, fmt.Sprintf("%s.tokens", name))
	}
}

// Requests a token from the web after the user pastes the authorization code.
func tokenFromWeb(config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(context.TODO(), code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	return token, nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)

	return token, err
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
