package utils

import "fmt"

// ColumnLetter converts a 1-based column number to spreadsheet letter
// notation (1 -> "A", 26 -> "Z", 27 -> "AA"). Base 26 with no zero digit,
// so each step borrows one before dividing.
func ColumnLetter(index int) string {
	if index < 1 {
		return ""
	}
	var letters []byte
	for index > 0 {
		index--
		letters = append([]byte{byte('A' + index%26)}, letters...)
		index /= 26
	}
	return string(letters)
}

// LocateRow finds the data row whose first column equals id within a full
// sheet snapshot. The first row is the header; the returned index is
// 0-based over the data rows, or -1 when no row matches.
func LocateRow(id string, values [][]string) int {
	for i, row := range values {
		if i == 0 {
			continue
		}
		if len(row) > 0 && row[0] == id {
			return i - 1
		}
	}
	return -1
}

// RowRange builds the A1 range covering columns 1..width of the given
// 0-based data row, e.g. RowRange("Items", 0, 3) -> "Items!A2:C2".
func RowRange(sheetName string, dataRowIndex, width int) string {
	sheetRow := dataRowIndex + 2
	return fmt.Sprintf("%s!A%d:%s%d", sheetName, sheetRow, ColumnLetter(width), sheetRow)
}

// CellRange builds the A1 range spanning 1-based columns startCol..endCol
// of the given 0-based data row, used for column-growing history writes.
func CellRange(sheetName string, dataRowIndex, startCol, endCol int) string {
	sheetRow := dataRowIndex + 2
	return fmt.Sprintf("%s!%s%d:%s%d",
		sheetName, ColumnLetter(startCol), sheetRow, ColumnLetter(endCol), sheetRow)
}
