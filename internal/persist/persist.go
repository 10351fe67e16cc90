// Package persist serializes the calculation history to and from a
// row-oriented CSV file.
//
// The format is a header row `operation,operand1,operand2,result,timestamp`
// followed by one row per calculation. An empty history serializes to
// header-only output. Timestamps are RFC 3339 with nanoseconds; rows
// missing a timestamp value default to the load time.
package persist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dshills/reckon/internal/engine/calc"
)

// ErrNotFound indicates the history file does not exist.
var ErrNotFound = errors.New("history file not found")

// Error reports a history persistence failure.
type Error struct {
	// Path is the file involved.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("history file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// header is the required first row of every history file.
var header = []string{"operation", "operand1", "operand2", "result", "timestamp"}

// timestampFormats are accepted on load, newest first. The bare layouts
// cover files written by tools that emit ISO-8601 without a zone.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Save writes the history to path, creating intermediate directories as
// needed. An empty history produces header-only output.
func Save(entries []calc.Calculation, path, encodingName string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &Error{Path: path, Err: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &Error{Path: path, Err: err}
	}

	if err := writeCSV(f, entries, encodingName); err != nil {
		f.Close()
		return &Error{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Path: path, Err: err}
	}
	return nil
}

func writeCSV(w io.Writer, entries []calc.Calculation, encodingName string) error {
	out, err := encodeWriter(w, encodingName)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(out)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range entries {
		row := []string{
			c.Operation,
			formatFloat(c.Operand1),
			formatFloat(c.Operand2),
			formatFloat(c.Result),
			c.Timestamp.Format(time.RFC3339Nano),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Load reads a history file. A missing file is an error; an empty file
// yields an empty sequence.
func Load(path, encodingName string) ([]calc.Calculation, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Path: path, Err: ErrNotFound}
		}
		return nil, &Error{Path: path, Err: err}
	}
	defer f.Close()

	entries, err := readCSV(f, encodingName)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return entries, nil
}

func readCSV(r io.Reader, encodingName string) ([]calc.Calculation, error) {
	in, err := decodeReader(r, encodingName)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	if records[0][0] != header[0] {
		return nil, fmt.Errorf("missing header row, got %q", records[0][0])
	}

	entries := make([]calc.Calculation, 0, len(records)-1)
	for i, row := range records[1:] {
		c, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, c)
	}
	return entries, nil
}

func parseRow(row []string) (calc.Calculation, error) {
	if len(row) < 4 {
		return calc.Calculation{}, fmt.Errorf("expected at least 4 columns, got %d", len(row))
	}

	operand1, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return calc.Calculation{}, fmt.Errorf("invalid operand1 %q", row[1])
	}
	operand2, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return calc.Calculation{}, fmt.Errorf("invalid operand2 %q", row[2])
	}
	result, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return calc.Calculation{}, fmt.Errorf("invalid result %q", row[3])
	}

	c := calc.Calculation{
		Operation: row[0],
		Operand1:  operand1,
		Operand2:  operand2,
		Result:    result,
		Timestamp: time.Now(),
	}
	if len(row) > 4 && row[4] != "" {
		ts, err := parseTimestamp(row[4])
		if err != nil {
			return calc.Calculation{}, err
		}
		c.Timestamp = ts
	}
	return c, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampFormats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
