package github

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/stars"
)

// csvHeader lists the columns of a CSV export, common fields first.
var csvHeader = []string{"full_name", "description", "url", "stars", "language", "topics", "starred_at"}

// WriteJSON writes records in the canonical export form that Load reads
// back, so fetched data can feed a later analyze run unchanged.
func WriteJSON(path string, records []stars.Record) error {
	if records == nil {
		records = []stars.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.WrapParse("json", path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// WriteCSV writes records as a flat spreadsheet export. Topics are joined
// with semicolons so the column stays a single cell.
func WriteCSV(path string, records []stars.Record) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, csvHeader)
	for _, r := range records {
		rows = append(rows, []string{
			r.FullName,
			r.Description,
			r.WebURL(),
			strconv.Itoa(int(r.Stars)),
			r.Language,
			strings.Join(r.Topics, ";"),
			r.StarredAt.UTC().Format(constants.TimeFormatISO8601),
		})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return errors.WrapIO("encode", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
