// Package export writes dataset tables to external formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vizdeck/vizdeck/internal/dataset"
)

// WriteCSV writes the table as CSV with a header row.
func WriteCSV(w io.Writer, t dataset.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
