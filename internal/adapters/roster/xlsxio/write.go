package xlsxio

import (
	"github.com/xuri/excelize/v2"

	"jubilee/internal/core/roster"
	perr "jubilee/internal/platform/errors"
)

// Derived column headers appended to the included-records workbook and used
// by the summary workbook, matching the source roster conventions
const (
	HeaderYears  = "周年数"
	HeaderLabel  = "周年标签"
	HeaderPeople = "人员信息"
	HeaderRemark = "备注"
)

const sheetName = "Sheet1"

// WriteIncluded renders the included-records table: the original roster
// columns followed by the derived years, remark and display-label columns
func WriteIncluded(columns []string, included []roster.Included) ([]byte, error) {
	header := make([]any, 0, len(columns)+3)
	for _, c := range columns {
		header = append(header, c)
	}
	header = append(header, HeaderYears, HeaderRemark, HeaderPeople)

	rows := make([][]any, 0, len(included))
	for _, inc := range included {
		row := make([]any, 0, len(columns)+3)
		for i := range columns {
			var v string
			if i < len(inc.Cells) {
				v = inc.Cells[i]
			}
			row = append(row, v)
		}
		row = append(row, inc.ServiceYears, inc.Remark, inc.DisplayLabel)
		rows = append(rows, row)
	}
	return writeSheet(header, rows)
}

// WriteSummary renders the anniversary summary table
func WriteSummary(summary []roster.SummaryRow) ([]byte, error) {
	rows := make([][]any, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, []any{s.Years, s.Label, s.People})
	}
	return writeSheet([]any{HeaderYears, HeaderLabel, HeaderPeople}, rows)
}

func writeSheet(header []any, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, perr.Processingf(err, "write header row")
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, perr.Processingf(err, "cell name for row %d", i+2)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, perr.Processingf(err, "write row %d", i+2)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, perr.Processingf(err, "serialize workbook")
	}
	return buf.Bytes(), nil
}
