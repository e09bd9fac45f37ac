package sheets

import (
	"fmt"
	"strconv"
	"strings"

	gsheets "google.golang.org/api/sheets/v4"
)

// ColumnLetter converts a 1-based column index to its A1 letter,
// e.g. 1 -> "A", 27 -> "AA".
func ColumnLetter(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// A1Range builds the A1 range covering rows x cols anchored at A1,
// e.g. A1Range(3, 2) -> "A1:B3".
func A1Range(rows, cols int) string {
	return fmt.Sprintf("A1:%s%d", ColumnLetter(cols), rows)
}

// parseCell splits an A1 cell like "C10" into its 1-based column and
// row numbers.
func parseCell(cell string) (col, row int, err error) {
	i := 0
	for i < len(cell) && cell[i] >= 'A' && cell[i] <= 'Z' {
		col = col*26 + int(cell[i]-'A') + 1
		i++
	}
	if i == 0 || i == len(cell) {
		return 0, 0, fmt.Errorf("invalid cell reference %q", cell)
	}
	row, err = strconv.Atoi(cell[i:])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("invalid cell reference %q", cell)
	}
	return col, row, nil
}

// parseA1Range converts an "A1:C3"-style range (or a single cell) into
// the half-open GridRange the batchUpdate API expects.
func parseA1Range(sheetID int64, rangeA1 string) (*gsheets.GridRange, error) {
	start, end, found := strings.Cut(rangeA1, ":")
	if !found {
		end = start
	}

	startCol, startRow, err := parseCell(start)
	if err != nil {
		return nil, err
	}
	endCol, endRow, err := parseCell(end)
	if err != nil {
		return nil, err
	}
	if endCol < startCol || endRow < startRow {
		return nil, fmt.Errorf("range %q ends before it starts", rangeA1)
	}

	return &gsheets.GridRange{
		SheetId:          sheetID,
		StartRowIndex:    int64(startRow - 1),
		EndRowIndex:      int64(endRow),
		StartColumnIndex: int64(startCol - 1),
		EndColumnIndex:   int64(endCol),
	}, nil
}

// quoteTitle wraps a worksheet title for use in an A1 range reference,
// escaping embedded quotes.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
