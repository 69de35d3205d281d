package categorize

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyInput is returned when the report has no header row.
var ErrEmptyInput = errors.New("input file is empty")

// Table is a tab-separated report: one header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable parses a TSV report. Blank lines after the header are skipped.
// Empty leading and trailing fields are kept, and rows shorter than the
// header are padded with empty cells so every row lines up with it.
func ReadTable(r io.Reader) (Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var (
		table  Table
		seenHd bool
	)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if !seenHd {
			table.Header = strings.Split(line, "\t")
			seenHd = true
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := strings.Split(line, "\t")
		for len(row) < len(table.Header) {
			row = append(row, "")
		}
		table.Rows = append(table.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return Table{}, fmt.Errorf("read table: %w", err)
	}
	if !seenHd {
		return Table{}, ErrEmptyInput
	}
	return table, nil
}

// ValidateColumns checks that both 1-based indices fall within the header.
func (t Table) ValidateColumns(col1, col2 int) error {
	n := len(t.Header)
	if col1 < 1 || col1 > n || col2 < 1 || col2 > n {
		return fmt.Errorf("column indices must be between 1 and %d", n)
	}
	return nil
}
