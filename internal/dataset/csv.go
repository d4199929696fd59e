package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteCSV serializes the dataset with the index as the first column. Missing
// values render as empty cells.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string{d.index}, d.columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(header))
	for _, key := range d.keys {
		row[0] = key
		for i, col := range d.columns {
			row[i+1] = d.rows[key][col].String()
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %q: %w", key, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the dataset to path, creating or truncating the file.
func (d *Dataset) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := d.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
