package datafile

// RawRow holds one data row as column name to cell string
type RawRow map[string]string

// RawTable is a parsed delimited or workbook table before any typing
type RawTable struct {
	Headers []string
	Rows    []RawRow
}
