package results

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// WriteCSV renders a table as CSV with a header row. Nil cells become
// empty fields.
func WriteCSV(w io.Writer, table *models.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) && row[i] != nil {
				record[i] = fmt.Sprintf("%v", row[i])
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
