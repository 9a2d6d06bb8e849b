package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"order-analytics/internal/models"
)

// Required input columns, by header name.
const (
	ColOrderID       = "Order ID"
	ColEmail         = "Email"
	ColDatePlaced    = "Date placed"
	ColDateCompleted = "Date Completed"
	ColSKU           = "SKU"
	ColQty           = "QTY"
	ColUnitPrice     = "Unit Price"
	ColUnitCost      = "Unit Cost"
)

var requiredColumns = []string{
	ColOrderID, ColEmail, ColDatePlaced, ColDateCompleted,
	ColSKU, ColQty, ColUnitPrice, ColUnitCost,
}

// Accepted date layouts, tried in order. Day-first for slash dates, which
// is what the order exports use.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"02/01/2006 15:04",
}

// ReadCSV parses a comma-delimited order-line export. The header row is
// required; rows fail fast with SchemaError, ParseError or DataError.
// Nothing is silently dropped, since every downstream total depends on
// every line being accounted for exactly once.
func ReadCSV(r io.Reader) ([]models.OrderLine, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &DataError{Reason: "dataset is empty"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	records := make([][]string, 0, 256)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Row: csvErr.Line, Err: csvErr.Err}
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		records = append(records, record)
	}

	return parseTable(header, records)
}

// ReadFile reads a dataset from disk, choosing the decoder by extension
// (.xlsx for spreadsheets, CSV otherwise).
func ReadFile(path string) ([]models.OrderLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(f)
	}
	return ReadCSV(f)
}

// parseTable coerces raw string records into normalized order lines. Both
// the CSV and XLSX decoders feed it so the two formats share one schema
// and one error taxonomy.
func parseTable(header []string, records [][]string) ([]models.OrderLine, error) {
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, &DataError{Reason: "dataset contains no data rows"}
	}

	lines := make([]models.OrderLine, 0, len(records))
	for i, record := range records {
		row := i + 2 // 1-based, header is row 1

		field := func(col string) string {
			idx := index[col]
			if idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		datePlaced, err := parseDate(row, ColDatePlaced, field(ColDatePlaced))
		if err != nil {
			return nil, err
		}
		dateCompleted, err := parseDate(row, ColDateCompleted, field(ColDateCompleted))
		if err != nil {
			return nil, err
		}
		qty, err := parseInt(row, ColQty, field(ColQty))
		if err != nil {
			return nil, err
		}
		unitPrice, err := parseFloat(row, ColUnitPrice, field(ColUnitPrice))
		if err != nil {
			return nil, err
		}
		unitCost, err := parseFloat(row, ColUnitCost, field(ColUnitCost))
		if err != nil {
			return nil, err
		}

		line := models.OrderLine{
			OrderID:       field(ColOrderID),
			Email:         field(ColEmail),
			DatePlaced:    datePlaced,
			DateCompleted: dateCompleted,
			SKU:           field(ColSKU),
			Qty:           qty,
			UnitPrice:     unitPrice,
			UnitCost:      unitCost,
		}

		if err := validateLine(row, line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[name] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return index, nil
}

func validateLine(row int, line models.OrderLine) error {
	switch {
	case line.OrderID == "":
		return &DataError{Row: row, Reason: "empty Order ID"}
	case line.Qty < 0:
		return &DataError{Row: row, Reason: fmt.Sprintf("negative QTY %d", line.Qty)}
	case line.UnitPrice < 0:
		return &DataError{Row: row, Reason: fmt.Sprintf("negative Unit Price %v", line.UnitPrice)}
	case line.UnitCost < 0:
		return &DataError{Row: row, Reason: fmt.Sprintf("negative Unit Cost %v", line.UnitCost)}
	}
	return nil
}

func parseDate(row int, col, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Row: row, Column: col, Value: value, Err: fmt.Errorf("unrecognized date format")}
}

func parseInt(row int, col, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Row: row, Column: col, Value: value, Err: err}
	}
	return n, nil
}

func parseFloat(row int, col, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ParseError{Row: row, Column: col, Value: value, Err: err}
	}
	return f, nil
}
