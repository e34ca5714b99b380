// Package importer turns parsed spreadsheet rows into candidate entities
// through a user-reviewable mapping pipeline: file load, column mapping
// with auto-guess, preview, and final bulk insert.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CellKind tags a spreadsheet cell value.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
)

// Cell is one spreadsheet cell. Str always holds the raw text; Num is set
// for CellNumber cells (including spreadsheet date serials).
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
}

// Sheet is a parsed tabular file: a header row plus data rows aligned to
// the headers.
type Sheet struct {
	Headers []string
	Rows    [][]Cell
}

// Cell returns the row's cell under the named header.
func (s Sheet) Cell(row []Cell, header string) Cell {
	for i, h := range s.Headers {
		if h == header && i < len(row) {
			return row[i]
		}
	}
	return Cell{}
}

// ReadSheet parses CSV input into a Sheet. The first record is the header
// row; cells that parse as plain numbers become CellNumber so spreadsheet
// date serials survive the trip.
func ReadSheet(r io.Reader) (Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return Sheet{}, fmt.Errorf("reading rows: %w", err)
	}
	if len(records) == 0 {
		return Sheet{}, fmt.Errorf("empty file")
	}

	sheet := Sheet{Headers: records[0]}
	for _, rec := range records[1:] {
		row := make([]Cell, len(rec))
		for i, raw := range rec {
			row[i] = makeCell(raw)
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

func makeCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{Kind: CellEmpty}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Cell{Kind: CellNumber, Str: s, Num: n}
	}
	return Cell{Kind: CellString, Str: s}
}

// WriteSheet writes a header row and data rows as CSV.
func WriteSheet(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
