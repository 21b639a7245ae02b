package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"preorder-sync/internal/sync"
)

// Sync report template. Keep header order EXACT: the sheet the shop uses to
// review failed rows is built on these columns.
var reportHeader = []string{
	"RUN_ID",
	"LINE",
	"SKU",
	"NAME",
	"STATUS",
	"PRODUCT_ID",
	"REASON",
}

// Write emits one row per processed CSV line plus the run id, so several
// runs can land in the same folder and still be told apart.
func Write(w io.Writer, runID string, rows []sync.RowOutcome) error {
	cw := csv.NewWriter(w)
	// match typical templates
	cw.UseCRLF = true

	if err := cw.Write(reportHeader); err != nil {
		return err
	}

	for _, r := range rows {
		rec := []string{
			runID,
			strconv.Itoa(r.Line),
			r.SKU,
			r.Name,
			string(r.Result.Status),
			r.Result.ProductID,
			r.Result.Reason,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile is the path-based convenience used by the CLI.
func WriteFile(path, runID string, rows []sync.RowOutcome) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Write(f, runID, rows); err != nil {
		return err
	}
	return f.Sync()
}
