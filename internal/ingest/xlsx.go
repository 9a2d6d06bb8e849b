package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"order-analytics/internal/models"
)

// ReadXLSX decodes an order-line export from the first sheet of a
// spreadsheet workbook. Rows go through the same schema validation and
// coercion as CSV input.
func ReadXLSX(r io.Reader) ([]models.OrderLine, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &DataError{Reason: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, &DataError{Reason: "dataset is empty"}
	}

	return parseTable(rows[0], rows[1:])
}
