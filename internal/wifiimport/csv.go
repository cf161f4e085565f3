package wifiimport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Column names the bulk export is required to carry. The header row is the
// contract; column order doesn't matter.
var requiredColumns = []string{
	"id", "programa", "fecha_instalacion",
	"latitud", "longitud", "colonia", "alcaldia",
}

// Source streams raw rows out of the bulk CSV export one at a time, so the
// whole file never sits in memory. Forward-only, single pass.
type Source struct {
	file   *os.File
	reader *csv.Reader
	cols   map[string]int
}

// OpenCSV opens the export, reads the header row and checks the required
// columns are present.
func OpenCSV(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	// Handle BOM on first header cell
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	cols := map[string]int{}
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, k := range requiredColumns {
		if _, ok := cols[k]; !ok {
			f.Close()
			return nil, fmt.Errorf("missing required column: %s", k)
		}
	}

	return &Source{file: f, reader: r, cols: cols}, nil
}

// Next returns the next data row keyed by column name. Cells beyond the
// row's length come back as empty strings. Returns io.EOF when drained.
func (s *Source) Next() (map[string]string, error) {
	rec, err := s.reader.Read()
	if err != nil {
		return nil, err
	}
	row := make(map[string]string, len(s.cols))
	for name, i := range s.cols {
		if i < len(rec) {
			row[name] = strings.TrimSpace(rec[i])
		} else {
			row[name] = ""
		}
	}
	return row, nil
}

func (s *Source) Close() error {
	return s.file.Close()
}
