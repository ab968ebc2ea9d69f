package commands

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	expected := Config{
		Credentials: "/etc/sheetfreak/credentials.json",
		URL:         "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
	}

	file := filepath.Join(t.TempDir(), "sheetfreak.yaml")
	document := `credentials: /etc/sheetfreak/credentials.json
url: https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms
`

	if err := os.WriteFile(file, []byte(document), 0660); err != nil {
		t.Fatalf("Error creating test configuration file (%v)", err)
	}

	conf, err := loadConfig(file)
	if err != nil {
		t.Fatalf("Unexpected error returned from loadConfig (%v)", err)
	}

	if !reflect.DeepEqual(conf, expected) {
		t.Errorf("Incorrect configuration\n   expected: %+v\n   got:      %+v\n", expected, conf)
	}
}

func TestLoadConfigWithMissingFile(t *testing.T) {
	conf, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected missing configuration file to be ignored, got error (%v)", err)
	}

	if !reflect.DeepEqual(conf, (Config{})) {
		t.Errorf("Expected empty configuration, got %+v", conf)
	}
}

func TestLoadConfigWithInvalidYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sheetfreak.yaml")

	if err := os.WriteFile(file, []byte("credentials: [not closed"), 0660); err != nil {
		t.Fatalf("Error creating test configuration file (%v)", err)
	}

	if _, err := loadConfig(file); err == nil {
		t.Fatalf("Expected error return for invalid configuration file, got %v", err)
	}
}
