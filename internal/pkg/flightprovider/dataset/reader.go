package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadAllRecords parses comma separated records. Lines starting with '#' are
// skipped and leading spaces of each field are trimmed.
func ReadAllRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, ErrUnreadableDataset.WithCause(err)
	}

	return records, nil
}

// ReadFile opens path and parses it with ReadAllRecords.
func ReadFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ErrUnreadableDataset.WithCause(err)
	}
	defer file.Close()

	records, err := ReadAllRecords(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return records, nil
}
