package commands

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/api/sheets/v4"
)

var exported = sheets.ValueRange{
	Values: [][]interface{}{
		{"Card Number", "From", "To"},
		{"6001001", "2020-01-01", "2020-12-31"},
		{"6001002", "2020-02-03", "2020-11-30"},
	},
}

func TestWriteTSV(t *testing.T) {
	expected := "Card Number\tFrom\tTo\n" +
		"6001001\t2020-01-01\t2020-12-31\n" +
		"6001002\t2020-02-03\t2020-11-30\n"

	var b bytes.Buffer

	if err := writeTSV(&b, &exported); err != nil {
		t.Fatalf("Unexpected error returned from writeTSV (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, b.String())
	}
}

func TestWriteCSV(t *testing.T) {
	expected := "Card Number,From,To\n" +
		"6001001,2020-01-01,2020-12-31\n" +
		"6001002,2020-02-03,2020-11-30\n"

	var b bytes.Buffer

	if err := writeCSV(&b, &exported); err != nil {
		t.Fatalf("Unexpected error returned from writeCSV (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect CSV\n   expected: %q\n   got:      %q\n", expected, b.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer

	if err := writeJSON(&b, &exported); err != nil {
		t.Fatalf("Unexpected error returned from writeJSON (%v)", err)
	}

	values := [][]interface{}{}
	if err := json.Unmarshal(b.Bytes(), &values); err != nil {
		t.Fatalf("Unexpected error unmarshalling JSON output (%v)", err)
	}

	if !reflect.DeepEqual(values, exported.Values) {
		t.Errorf("Incorrect JSON\n   expected: %v\n   got:      %v\n", exported.Values, values)
	}
}

func TestWriteWithEmptySheet(t *testing.T) {
	var b bytes.Buffer

	if err := writeTSV(&b, &sheets.ValueRange{}); err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestReadTable(t *testing.T) {
	tsv := "Card Number\tFrom\tTo\n" +
		"6001001\t2020-01-01\t2020-12-31\n" +
		"6001002\t2020-02-03\t2020-11-30\n"

	header, data, err := readTable(strings.NewReader(tsv), "Summary!A2:E", '\t')
	if err != nil {
		t.Fatalf("Unexpected error returned from readTable (%v)", err)
	}

	if header.Range != "Summary!A2:E2" {
		t.Errorf("Incorrect header range\n   expected: %v\n   got:      %v\n", "Summary!A2:E2", header.Range)
	}

	if data.Range != "Summary!A3:E" {
		t.Errorf("Incorrect data range\n   expected: %v\n   got:      %v\n", "Summary!A3:E", data.Range)
	}

	expected := [][]interface{}{
		{"6001001", "2020-01-01", "2020-12-31"},
		{"6001002", "2020-02-03", "2020-11-30"},
	}

	if !reflect.DeepEqual(data.Values, expected) {
		t.Errorf("Incorrect data\n   expected: %v\n   got:      %v\n", expected, data.Values)
	}
}

func TestReadTableWithInvalidRange(t *testing.T) {
	if _, _, err := readTable(strings.NewReader("a\tb\n"), "A2:E", '\t'); err == nil {
		t.Fatalf("Expected error return for range without worksheet, got %v", err)
	}
}

func TestReadTableWithEmptyFile(t *testing.T) {
	if _, _, err := readTable(strings.NewReader(""), "Summary!A2:E", '\t'); err == nil {
		t.Fatalf("Expected error return for empty file, got %v", err)
	}
}
