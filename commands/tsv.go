package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"google.golang.org/api/sheets/v4"
)

// The values API accepts open-ended A1 ranges for reads and writes so this
// is deliberately looser than grid.ParseRange - the sheet name and top-left
// cell are all that is needed to rebuild the header/data split ranges.
var region = regexp.MustCompile(`(.+?)!([a-zA-Z]+)([0-9]+):([a-zA-Z]+)([0-9]+)?`)

func writeTSV(f io.Writer, data *sheets.ValueRange) error {
	return writeSeparated(f, data, '\t')
}

func writeCSV(f io.Writer, data *sheets.ValueRange) error {
	return writeSeparated(f, data, ',')
}

func writeSeparated(f io.Writer, data *sheets.ValueRange, comma rune) error {
	if len(data.Values) == 0 {
		return fmt.Errorf("empty sheet")
	}

	w := csv.NewWriter(f)
	w.Comma = comma

	for _, row := range data.Values {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprintf("%v", v)
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

func writeJSON(f io.Writer, data *sheets.ValueRange) error {
	if len(data.Values) == 0 {
		return fmt.Errorf("empty sheet")
	}

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data.Values)
}

// readTable reads a delimited file into the pair of value ranges for a
// batch update - the header row addressed to the first row of the range and
// the data rows addressed to the remainder.
func readTable(f io.Reader, area string, comma rune) (*sheets.ValueRange, *sheets.ValueRange, error) {
	match := region.FindStringSubmatch(area)
	if len(match) < 5 {
		return nil, nil, fmt.Errorf("invalid spreadsheet range '%s'", area)
	}

	name := match[1]
	left := match[2]
	top, _ := strconv.Atoi(match[3])
	right := match[4]

	r := csv.NewReader(f)
	r.Comma = comma

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("file is empty")
	}

	h := make([]interface{}, len(records[0]))
	for i, v := range records[0] {
		h[i] = v
	}

	header := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s%v", name, left, top, right, top),
		Values: [][]interface{}{h},
	}

	rows := make([][]interface{}, 0)
	for _, record := range records[1:] {
		row := make([]interface{}, len(record))
		for i, v := range record {
			row[i] = v
		}

		rows = append(rows, row)
	}

	data := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s", name, left, top+1, right),
		Values: rows,
	}

	return &header, &data, nil
}
