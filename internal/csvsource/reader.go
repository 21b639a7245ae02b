package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Columnas del template preordini (v7). El resto son opcionales.
const (
	ColName     = "nome_articolo"
	ColPrice    = "prezzo_eur"
	ColSKU      = "sku"
	ColBody     = "descrizione"
	ColDeadline = "preorder_deadline"
	ColETA      = "eta"
	ColBrand    = "brand"
	ColCategory = "categoria"
)

var requiredColumns = []string{ColName, ColPrice, ColSKU}

// ErrMissingColumns means the file itself is unusable (whole-run fatal),
// as opposed to a bad value on one row (per-row skip).
var ErrMissingColumns = errors.New("csv: missing required columns")

// Reader walks a semicolon-delimited preorder CSV and hands back one
// column→value map per row. The delimiter and the BOM handling match the
// template the shop exports (UTF-8 with BOM, ';').
type Reader struct {
	cr     *csv.Reader
	header []string
	line   int // 1-based file line, header is line 1
}

func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	// utf-8-sig: el BOM queda pegado a la primera columna
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var missing []string
	have := map[string]bool{}
	for _, h := range header {
		have[h] = true
	}
	for _, c := range requiredColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return &Reader{cr: cr, header: header, line: 1}, nil
}

// Open resolves the CSV path (explicit arg, then CSV_PATH-style fallback list)
// and returns a Reader plus the file to close.
func Open(candidates ...string) (*Reader, *os.File, error) {
	var tried []string
	for _, p := range candidates {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tried = append(tried, p)
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		r, err := NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("%s: %w", p, err)
		}
		return r, f, nil
	}
	return nil, nil, fmt.Errorf("csv: no file found, tried: %s", strings.Join(tried, ", "))
}

// Next returns the next row as a column map plus its file line.
// io.EOF when done.
func (r *Reader) Next() (map[string]string, int, error) {
	rec, err := r.cr.Read()
	if err != nil {
		return nil, 0, err
	}
	r.line++

	row := make(map[string]string, len(r.header))
	for i, h := range r.header {
		if h == "" || i >= len(rec) {
			continue
		}
		row[h] = rec[i]
	}
	return row, r.line, nil
}
