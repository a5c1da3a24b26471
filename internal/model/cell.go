package model

import "time"

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellDate
)

// Cell is a single spreadsheet cell value. Exactly one of the value
// fields is meaningful, selected by Kind.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Date time.Time
}

// EmptyCell is the zero cell value.
var EmptyCell = Cell{Kind: CellEmpty}

// StringCell wraps a textual cell value.
func StringCell(s string) Cell {
	return Cell{Kind: CellString, Str: s}
}

// NumberCell wraps a numeric cell value.
func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Num: n}
}

// DateCell wraps a native date cell value.
func DateCell(t time.Time) Cell {
	return Cell{Kind: CellDate, Date: t}
}

// IsEmpty reports whether the cell holds no value. A string cell holding
// only whitespace still counts as non-empty; trimming is the caller's call.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || (c.Kind == CellString && c.Str == "")
}

// Row is one spreadsheet row keyed by column header. Headers preserves the
// column order of the source sheet so header searches stay deterministic.
type Row struct {
	Headers []string
	Cells   map[string]Cell
}

// NewRow creates an empty row.
func NewRow() Row {
	return Row{Cells: make(map[string]Cell)}
}

// Set adds a cell under the given header, recording insertion order.
func (r *Row) Set(header string, cell Cell) {
	if _, ok := r.Cells[header]; !ok {
		r.Headers = append(r.Headers, header)
	}
	r.Cells[header] = cell
}

// Get returns the cell under the given header, or an empty cell.
func (r Row) Get(header string) Cell {
	if c, ok := r.Cells[header]; ok {
		return c
	}
	return EmptyCell
}

// Sheet is an ordered sequence of rows under one sheet name.
type Sheet struct {
	Name string
	Rows []Row
}

// Workbook is a parsed spreadsheet. SheetNames preserves workbook order;
// a Workbook is immutable after parse.
type Workbook struct {
	SheetNames []string
	Sheets     map[string]*Sheet
}

// Sheet returns the named sheet, or nil if absent.
func (w *Workbook) Sheet(name string) *Sheet {
	return w.Sheets[name]
}

// FirstSheet returns the first sheet in workbook order, or nil when the
// workbook has no sheets.
func (w *Workbook) FirstSheet() *Sheet {
	if len(w.SheetNames) == 0 {
		return nil
	}
	return w.Sheets[w.SheetNames[0]]
}
