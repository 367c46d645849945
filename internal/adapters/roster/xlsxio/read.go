package xlsxio

import (
	"io"

	"github.com/xuri/excelize/v2"

	"jubilee/internal/core/roster"
	perr "jubilee/internal/platform/errors"
)

// ReadTable parses the first sheet of an xlsx workbook. The first row is
// taken as headers (width-folded onto the canonical column names), every
// following row becomes a data row of display strings
func ReadTable(r io.Reader) (roster.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return roster.Table{}, perr.Wrapf(err, perr.ErrorCodeDataType, "not a readable xlsx workbook")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return roster.Table{}, perr.DataTypef("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return roster.Table{}, perr.Wrapf(err, perr.ErrorCodeDataType, "cannot read sheet %q", sheets[0])
	}
	if len(rows) == 0 {
		// empty sheet, core will report the missing columns
		return roster.Table{}, nil
	}

	cols := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		cols[i] = canonicalize(h)
	}
	return roster.Table{Columns: cols, Rows: rows[1:]}, nil
}
