package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

var (
	// ErrNoSheets marks a workbook that decoded but contains no sheets.
	ErrNoSheets = errors.New("workbook has no sheets")
	// ErrEmptySheet marks a resolved sheet with no data rows.
	ErrEmptySheet = errors.New("sheet has no data rows")
)

// LoadWorkbook decodes raw workbook content into the row model. Cell
// values are typed: date-styled cells become date cells (read back from
// their raw serial), anything that parses as a number becomes a number
// cell, everything else stays a string. Dates may still arrive as
// formatted text or bare serials depending on the export; the coercion
// layer handles those.
func LoadWorkbook(r io.Reader) (*model.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, ErrNoSheets
	}

	wb := &model.Workbook{
		SheetNames: names,
		Sheets:     make(map[string]*model.Sheet, len(names)),
	}

	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		wb.Sheets[name] = buildSheet(f, name, rows)
	}

	return wb, nil
}

// buildSheet converts raw string rows into header-keyed rows. The first
// row is the header row; blank headers are skipped.
func buildSheet(f *excelize.File, name string, raw [][]string) *model.Sheet {
	sheet := &model.Sheet{Name: name}
	if len(raw) == 0 {
		return sheet
	}

	headers := raw[0]
	for ri, cells := range raw[1:] {
		row := model.NewRow()
		for ci, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			if ci < len(cells) {
				row.Set(header, typeCell(f, name, ci, ri+1, cells[ci]))
			} else {
				row.Set(header, model.EmptyCell)
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

// typeCell classifies one cell. Excel stores dates as styled serials and
// GetRows renders them as locale strings (often with two-digit years),
// so date-styled cells are re-read from their raw serial instead of
// round-tripping through the display text.
func typeCell(f *excelize.File, sheet string, col, row int, s string) model.Cell {
	if s == "" {
		return model.EmptyCell
	}
	if ref, err := excelize.CoordinatesToCellName(col+1, row+1); err == nil && isDateStyled(f, sheet, ref) {
		if t, ok := rawCellDate(f, sheet, ref); ok {
			return model.DateCell(t)
		}
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return model.NumberCell(n)
	}
	return model.StringCell(s)
}

// builtinDateNumFmts are the builtin numbering format ids that render as
// dates or times.
var builtinDateNumFmts = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true,
	20: true, 21: true, 22: true, 27: true, 28: true, 29: true,
	30: true, 31: true, 32: true, 33: true, 34: true, 35: true,
	36: true, 45: true, 46: true, 47: true, 50: true, 51: true,
	52: true, 53: true, 54: true, 55: true, 56: true, 57: true,
	58: true,
}

// isDateStyled reports whether the cell carries a date number format.
func isDateStyled(f *excelize.File, sheet, ref string) bool {
	styleID, err := f.GetCellStyle(sheet, ref)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if builtinDateNumFmts[style.NumFmt] {
		return true
	}
	if style.CustomNumFmt != nil {
		return customFmtIsDate(*style.CustomNumFmt)
	}
	return false
}

// customFmtIsDate reports whether a custom number format contains date
// tokens, ignoring quoted literals and bracketed sections.
func customFmtIsDate(numFmt string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range numFmt {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case !inQuote && !inBracket:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ymd")
}

// rawCellDate reads the cell's raw serial and converts it to a date.
func rawCellDate(f *excelize.File, sheet, ref string) (time.Time, bool) {
	raw, err := f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return time.Time{}, false
	}
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// SheetRows returns the data rows of the named sheet, or ErrEmptySheet
// when the sheet resolved but carries no rows.
func SheetRows(wb *model.Workbook, name string) ([]model.Row, error) {
	sheet := wb.Sheet(name)
	if sheet == nil || len(sheet.Rows) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", name, ErrEmptySheet)
	}
	return sheet.Rows, nil
}
