package xlsxio

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"jubilee/internal/core/roster"
	perr "jubilee/internal/platform/errors"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestReadTable(t *testing.T) {
	b := buildWorkbook(t, [][]any{
		{"姓名", "入职日期", "三级组织"},
		{"张三", "2020-05-04", "技术中心"},
		{"李四", "2019-11-30", "产品中心"},
	})

	tbl, err := ReadTable(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(tbl.Columns) != 3 || tbl.Columns[0] != roster.ColName {
		t.Fatalf("columns mismatch: %v", tbl.Columns)
	}
	if len(tbl.Rows) != 2 || tbl.Rows[1][0] != "李四" {
		t.Fatalf("rows mismatch: %v", tbl.Rows)
	}
}

func TestReadTable_FoldsHeaders(t *testing.T) {
	// fullwidth space and surrounding whitespace must not defeat matching
	b := buildWorkbook(t, [][]any{
		{" 姓名　", "入职日期 "},
		{"张三", "2020-05-04"},
	})
	tbl, err := ReadTable(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if tbl.Columns[0] != roster.ColName || tbl.Columns[1] != roster.ColHireDate {
		t.Fatalf("headers not canonicalized: %v", tbl.Columns)
	}
}

func TestReadTable_NotAWorkbook(t *testing.T) {
	_, err := ReadTable(strings.NewReader("this is not xlsx"))
	if !perr.IsCode(err, perr.ErrorCodeDataType) {
		t.Fatalf("expected data type error, got %v", err)
	}
}

func TestReadTable_EmptySheet(t *testing.T) {
	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	tbl, err := ReadTable(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(tbl.Columns) != 0 || len(tbl.Rows) != 0 {
		t.Fatalf("expected empty table, got %v", tbl)
	}
}

func TestWriteIncluded_RoundTrip(t *testing.T) {
	cols := []string{roster.ColName, roster.ColHireDate, roster.ColOrgLevel3}
	inc := []roster.Included{
		{
			Cells:        []string{"张三", "2020-05-04", "技术中心"},
			Name:         "张三",
			OrgLevel3:    "技术中心",
			HireDate:     time.Date(2020, 5, 4, 0, 0, 0, 0, time.UTC),
			ServiceYears: 3,
			Remark:       roster.RemarkOutsourced,
			DisplayLabel: "技术中心-张三（小张）",
		},
	}

	b, err := WriteIncluded(cols, inc)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	tbl, err := ReadTable(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	wantCols := []string{roster.ColName, roster.ColHireDate, roster.ColOrgLevel3, HeaderYears, HeaderRemark, HeaderPeople}
	if len(tbl.Columns) != len(wantCols) {
		t.Fatalf("columns mismatch: %v", tbl.Columns)
	}
	for i, c := range wantCols {
		if tbl.Columns[i] != c {
			t.Fatalf("column %d: got %q want %q", i, tbl.Columns[i], c)
		}
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows mismatch: %v", tbl.Rows)
	}
	got := tbl.Rows[0]
	if got[0] != "张三" || got[3] != "3" || got[4] != roster.RemarkOutsourced || got[5] != "技术中心-张三（小张）" {
		t.Fatalf("row mismatch: %v", got)
	}
}

func TestWriteSummary(t *testing.T) {
	b, err := WriteSummary([]roster.SummaryRow{
		{Years: 5, Label: "5周年", People: "产品中心-王五、产品中心-赵六"},
		{Years: 3, Label: "3周年", People: "技术中心-张三"},
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	tbl, err := ReadTable(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if tbl.Columns[0] != HeaderYears || tbl.Columns[1] != HeaderLabel || tbl.Columns[2] != HeaderPeople {
		t.Fatalf("headers mismatch: %v", tbl.Columns)
	}
	if len(tbl.Rows) != 2 || tbl.Rows[0][0] != "5" || tbl.Rows[1][2] != "技术中心-张三" {
		t.Fatalf("rows mismatch: %v", tbl.Rows)
	}
}
