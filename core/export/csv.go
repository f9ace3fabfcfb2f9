package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"dropship-sync/core/utils"

	"github.com/goccy/go-json"
)

// Rows flattens any slice of records (structs or maps) into CSV-ready maps
// using their JSON field names.
func Rows(v any) ([]map[string]any, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("flatten records: %w", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(encoded, &rows); err != nil {
		return nil, fmt.Errorf("flatten records: %w", err)
	}
	return rows, nil
}

// WriteCSV writes rows as CSV with a header line. Columns are the sorted
// union of all row keys so the output is deterministic regardless of map
// iteration order. Nested values are serialized as JSON cells.
func WriteCSV(w io.Writer, rows []map[string]any) error {
	keySet := map[string]struct{}{}
	for _, row := range rows {
		for k := range row {
			keySet[k] = struct{}{}
		}
	}
	header := make([]string, 0, len(keySet))
	for k := range keySet {
		header = append(header, k)
	}
	sort.Strings(header)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, row := range rows {
		for i, k := range header {
			record[i] = cell(row[k])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes rows as CSV to path, creating or truncating the file.
func WriteFile(path string, rows []map[string]any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteCSV(f, rows); err != nil {
		return err
	}
	return f.Sync()
}

// TimestampedName builds the conventional export file name for a batch.
func TimestampedName(prefix string) string {
	return fmt.Sprintf("dropship_%s_%s.csv", prefix, time.Now().Format("20060102_150405"))
}

func cell(v any) string {
	switch v.(type) {
	case nil, string, float64, bool:
		return utils.ToString(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return utils.ToString(v)
		}
		return string(encoded)
	}
}
